package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./semowl_data", cfg.Store.Path)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, PolicySkipName, cfg.Parse.Policy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "semowl.yaml")
	content := `
store:
  path: /var/lib/semowl
parse:
  policy: fail
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/semowl", cfg.Store.Path)
	assert.Equal(t, PolicyFailName, cfg.Parse.Policy)
	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, 1000, cfg.Parse.ProgressEvery)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "semowl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parse:\n  policy: maybe\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse.policy")
}

func TestValidateRejectsEmptyStorePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Path = ""
	assert.Error(t, cfg.Validate())
}
