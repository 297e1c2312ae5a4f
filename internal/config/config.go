// Package config handles the configuration directory and task-file path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// ConfigFile is the optional configuration filename.
	ConfigFile = "ltask.toml"

	// DefaultTaskFile is the task file path used when neither the
	// config file nor the --file flag overrides it. Relative to the
	// process working directory.
	DefaultTaskFile = "tasks.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TaskFile is the path of the persisted task file.
	TaskFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the on-disk shape of ltask.toml.
type fileConfig struct {
	File string `toml:"file"`
}

// New creates a Config. configDir overrides the default config
// directory; taskFile (the --file flag) overrides both the default task
// path and any path set in the config file. A missing config file is not
// an error; a malformed one is.
func New(configDir, taskFile string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, TaskFile: DefaultTaskFile}

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if fc.File != "" {
			cfg.TaskFile = fc.File
		}
	case os.IsNotExist(err):
		// No config file; defaults apply.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if taskFile != "" {
		cfg.TaskFile = taskFile
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the optional config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
