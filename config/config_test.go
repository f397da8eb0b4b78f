package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	content := "extensions:\n  - .phtml\naliases:\n  - LegacyHtml\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, Filename), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{".phtml"}, cfg.Extensions)
	assert.Equal(t, []string{"LegacyHtml"}, cfg.Aliases)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().SkipDirs, cfg.SkipDirs)
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, Filename), []byte("extensions: [oops"), 0644))

	_, err := Load(root)
	assert.ErrorContains(t, err, Filename)
}
