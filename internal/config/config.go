// Package config loads the application configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "textimg.toml"

// Config holds the settings outside any single render: where fonts and
// presets live and how chatty the tool is.
type Config struct {
	// FontDirs are directories scanned for .ttf/.otf files.
	FontDirs []string `toml:"font_dirs"`

	// PresetDir is where named presets are stored.
	PresetDir string `toml:"preset_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FontDirs:  []string{"fonts"},
		PresetDir: "presets",
		LogLevel:  "info",
	}
}

// Load reads a TOML config file, filling unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault loads path if it exists and silently falls back to the
// defaults when it does not. A file that exists but cannot be parsed is
// still an error.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) normalize() {
	if len(c.FontDirs) == 0 {
		c.FontDirs = Default().FontDirs
	}
	if c.PresetDir == "" {
		c.PresetDir = Default().PresetDir
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
	for i, dir := range c.FontDirs {
		c.FontDirs[i] = filepath.Clean(dir)
	}
	c.PresetDir = filepath.Clean(c.PresetDir)
}
