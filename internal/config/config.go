// SPDX-License-Identifier: MPL-2.0

// Package config loads rundbg configuration from the platform config
// directory, falling back to built-in defaults when no file exists.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"rundbg-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "rundbg"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// ConfigDir returns the rundbg configuration directory using platform
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultConfigFilePath returns the path the config file is read from and
// written to by `rundbg config init`.
func DefaultConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. It returns the
// loaded config and the resolved file path ("" when defaults were used).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("target", defaults.Target)
	v.SetDefault("style", defaults.Style)
	v.SetDefault("candidates", defaults.Candidates)
	v.SetDefault("workdir", defaults.Workdir)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.no_pause", defaults.UI.NoPause)
	v.SetDefault("ui.interactive", defaults.UI.Interactive)

	resolvedPath := ""

	// An explicit config file path is used exclusively.
	if opts.ConfigFilePath != "" {
		if _, statErr := os.Stat(opts.ConfigFilePath); statErr != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'rundbg config init' to create a default config").
				Wrap(statErr).
				BuildError()
		}
		v.SetConfigFile(opts.ConfigFilePath)
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			dir, err = ConfigDir()
			if err != nil {
				return nil, "", issue.WrapWithOperation(err, "resolve config directory")
			}
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
		resolvedPath = filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Missing config files are normal; use defaults.
			return defaults, "", nil
		}
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check the TOML syntax").
			WithSuggestion("Remove the file to fall back to defaults").
			Wrap(err).
			BuildError()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("parse configuration").
			WithResource(v.ConfigFileUsed()).
			Wrap(err).
			BuildError()
	}

	return cfg, v.ConfigFileUsed(), nil
}

// WriteDefault writes the built-in defaults as TOML to path, creating parent
// directories as needed. Existing files are not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return issue.NewErrorContext().
			WithOperation("write default configuration").
			WithResource(path).
			WithSuggestion("Remove the existing file first to regenerate it").
			Wrap(os.ErrExist).
			BuildError()
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return issue.WrapWithOperation(err, "encode default configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return issue.WrapWithOperation(err, "create config directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return issue.WrapWithOperation(err, "write default configuration")
	}

	return nil
}
