package stats

import (
	"strings"
	"testing"
)

func TestViewRendersWithoutStore(t *testing.T) {
	s := New(nil)
	s.Update(s.Init()())

	v := s.View(80, 24)
	if !strings.Contains(v, "Math Blitz") {
		t.Error("progress table missing tracked games")
	}
	if !strings.Contains(v, "never") {
		t.Error("unplayed games should show a never-played marker")
	}
	if !strings.Contains(v, "No sessions yet") {
		t.Error("empty session log should show the empty state")
	}
}
