package config

import (
	"fmt"
	"sync"
)

var (
	// globalConfig is the configuration shared by the CLI commands.
	globalConfig *Config

	configMutex sync.RWMutex

	// initOnce guards Initialize.
	initOnce sync.Once
)

// Initialize loads the configuration at path, applies MECHCFG_ environment
// overrides and stores the result as the process-wide configuration. An
// empty path starts from the defaults. Only the first call has any effect.
func Initialize(path string) error {
	var initErr error

	initOnce.Do(func() {
		cfg, err := LoadConfigWithEnvOverrides(path)
		if err != nil {
			initErr = err
			return
		}
		SetConfig(cfg)
	})

	return initErr
}

// GetConfig returns the process-wide configuration, or nil before a
// successful Initialize.
func GetConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetConfig replaces the process-wide configuration. Commands that build
// their configuration from flags use it instead of Initialize.
func SetConfig(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
}

// ReloadConfig reads path again and swaps the configuration in. On failure
// the previous configuration stays in place. Watch mode calls this when the
// tool configuration file changes.
func ReloadConfig(path string) error {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return fmt.Errorf("failed to reload configuration: %w", err)
	}
	SetConfig(cfg)
	return nil
}

// MustGetConfig is GetConfig for code that runs after startup. It panics
// when no configuration has been set.
func MustGetConfig() *Config {
	cfg := GetConfig()
	if cfg == nil {
		panic("configuration not initialized: call Initialize first")
	}
	return cfg
}
