// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DataFile is the default backing file name inside the config dir.
	DataFile = "tasks.json"

	// EnvFile is the optional settings file inside the config dir.
	EnvFile = "config.env"
)

// Environment keys honored from the process environment or config.env.
// The environment wins over the file.
const (
	EnvDataFile = "TODO_FILE"
	EnvPriority = "TODO_PRIORITY"
	EnvQuiet    = "TODO_QUIET"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the backing file path.
	DataFile string

	// DefaultPriority is the priority used by add when none is given.
	// Empty means the built-in default (Medium).
	DefaultPriority string

	// Quiet suppresses informational output.
	Quiet bool

	env map[string]string // config.env contents, may be nil
}

// New creates a Config with the default or specified config directory,
// then resolves the backing file path: the dataFile argument wins,
// then TODO_FILE (environment or config.env), then <dir>/tasks.json.
func New(configDir, dataFile string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir}

	// An absent or malformed config.env is not an error; settings in it
	// are conveniences, never required.
	if env, err := godotenv.Read(filepath.Join(dir, EnvFile)); err == nil {
		cfg.env = env
	}

	cfg.DataFile = dataFile
	if cfg.DataFile == "" {
		cfg.DataFile = cfg.lookup(EnvDataFile)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(dir, DataFile)
	}

	cfg.DefaultPriority = cfg.lookup(EnvPriority)

	switch cfg.lookup(EnvQuiet) {
	case "1", "true", "yes":
		cfg.Quiet = true
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

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// lookup reads a setting from the environment first, then config.env.
func (c *Config) lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return c.env[key]
}
