package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandinis/edudeck/internal/engine"
)

func TestDifficultySelectStartsOnMedium(t *testing.T) {
	d := NewDifficultySelect()
	chosen, ok := d.Handle("enter")
	assert.True(t, ok)
	assert.Equal(t, engine.Medium, chosen)
}

func TestDifficultySelectNavigation(t *testing.T) {
	d := NewDifficultySelect()

	_, ok := d.Handle("up")
	assert.False(t, ok)
	chosen, ok := d.Handle("enter")
	assert.True(t, ok)
	assert.Equal(t, engine.Easy, chosen)

	// Clamped at the top.
	d.Handle("k")
	chosen, _ = d.Handle("enter")
	assert.Equal(t, engine.Easy, chosen)

	d.Handle("down")
	d.Handle("j")
	chosen, _ = d.Handle("enter")
	assert.Equal(t, engine.Hard, chosen)

	// Clamped at the bottom.
	d.Handle("down")
	chosen, _ = d.Handle("enter")
	assert.Equal(t, engine.Hard, chosen)
}

func TestDifficultySelectNumberShortcuts(t *testing.T) {
	d := NewDifficultySelect()

	chosen, ok := d.Handle("1")
	assert.True(t, ok)
	assert.Equal(t, engine.Easy, chosen)

	chosen, ok = d.Handle("3")
	assert.True(t, ok)
	assert.Equal(t, engine.Hard, chosen)
}

func TestDifficultySelectIgnoresOtherKeys(t *testing.T) {
	d := NewDifficultySelect()
	_, ok := d.Handle("x")
	assert.False(t, ok)
	_, ok = d.Handle("space")
	assert.False(t, ok)
}
