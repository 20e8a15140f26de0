package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreSane(t *testing.T) {
	assert.Greater(t, Settings.Search.TtSizeMB, 0)
	assert.Greater(t, Settings.Search.MaxDepth, 0)
	assert.True(t, Settings.Search.UseNullMove)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	defer func() { Settings.Search.TtSizeMB = 128 }()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ntt_size_mb = 64\n"), 0o644))

	LoadFile(path)
	assert.Equal(t, 64, Settings.Search.TtSizeMB)
}

func TestLoadFileMissingPathIsNotFatal(t *testing.T) {
	before := Settings.Search.TtSizeMB
	LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, before, Settings.Search.TtSizeMB)
}

func TestLoadFileEmptyPathIsNoop(t *testing.T) {
	before := Settings
	LoadFile("")
	assert.Equal(t, before, Settings)
}
