package config

import (
	"github.com/arthur-debert/wslaunch/pkg/paths"
)

// Store backends
const (
	BackendOS          = "os"
	BackendMemory      = "memory"
	BackendBillyMemory = "billy-memory"
	BackendNone        = "none"
)

// Config is the complete wslaunch configuration
type Config struct {
	Server   string        `koanf:"server"`
	OwnerID  string        `koanf:"owner_id"`
	DataRoot string        `koanf:"data_root"`
	Store    StoreConfig   `koanf:"store"`
	Logging  LoggingConfig `koanf:"logging"`
}

// StoreConfig selects the backing store
type StoreConfig struct {
	Backend string `koanf:"backend"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	return &Config{
		DataRoot: paths.DefaultDataDir,
		Store:    StoreConfig{Backend: BackendOS},
	}
}

// Backends lists the accepted store backends
func Backends() []string {
	return []string{BackendOS, BackendMemory, BackendBillyMemory, BackendNone}
}
