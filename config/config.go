// Package config loads the optional per-project formshift configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the optional config file looked up at the conversion root.
const Filename = ".formshift.yml"

// Config controls which files are scanned and which facade names are
// rewritten.
type Config struct {
	// Extensions are the file name suffixes to process.
	Extensions []string `yaml:"extensions"`
	// SkipDirs are directory names pruned during traversal.
	SkipDirs []string `yaml:"skip_dirs"`
	// Aliases are extra facade names rewritten in every file, on top
	// of Form, Html, and aliases discovered per file.
	Aliases []string `yaml:"aliases"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Extensions: []string{".php", ".blade.php"},
		SkipDirs:   []string{".git", ".hg", ".svn", "node_modules", "vendor"},
	}
}

// Load reads the config file at root, falling back to Default when the
// file does not exist. Fields left empty in the file keep their
// defaults; a file that exists but cannot be read or parsed is an
// error.
func Load(root string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(root, Filename))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Filename, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Filename, err)
	}
	if len(file.Extensions) > 0 {
		cfg.Extensions = file.Extensions
	}
	if len(file.SkipDirs) > 0 {
		cfg.SkipDirs = file.SkipDirs
	}
	cfg.Aliases = file.Aliases
	return cfg, nil
}
