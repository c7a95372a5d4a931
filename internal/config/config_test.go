package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.False(t, cfg.FastCatalog)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EDUDECK_DB", "/tmp/test.db")
	t.Setenv("EDUDECK_ADDR", ":9999")
	t.Setenv("EDUDECK_FAST_CATALOG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/test.db", cfg.DBPath)
	require.Equal(t, ":9999", cfg.Addr)
	require.True(t, cfg.FastCatalog)
}
