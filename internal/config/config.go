package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/redi-labs/xcsync/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized settings keys.
const (
	// KeyDestination overrides the default xcodebuild destination used when
	// a sync manifest declares none.
	KeyDestination = "destination"
	// KeyDerivedDataRoot overrides the DerivedData directory swept by clean.
	KeyDerivedDataRoot = "derived_data_root"
	// KeyTailLines sets how many trailing build log lines are printed.
	KeyTailLines = "tail_lines"
	// KeyXcodebuildPath points at a specific xcodebuild binary instead of
	// the one found on PATH (e.g. inside a beta Xcode bundle).
	KeyXcodebuildPath = "xcodebuild_path"
)

// Dir returns the path to the config directory (~/.xcsync/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.xcsync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value, or fallback when unset or invalid.
func GetInt(key string, fallback int) int {
	if !viper.IsSet(key) {
		return fallback
	}
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
