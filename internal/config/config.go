// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"

	"orthoview/internal/logger"
)

const (
	EnvLogLevel    = "ORTHOVIEW_LOG_LEVEL"
	EnvJSONLogs    = "ORTHOVIEW_JSON_LOGS"
	EnvSessionFile = "ORTHOVIEW_SESSION_FILE"
	EnvStartDir    = "ORTHOVIEW_START_DIR"

	sessionDirName  = "orthoview"
	sessionFileName = "orthoview.toml"
)

type Config struct {
	LogLevel    logger.LogLevel
	JSONLogs    bool
	SessionFile string
	// StartDir overrides the browser's initial root. Empty means the
	// pictures directory.
	StartDir string
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config

	levelName, _ := lookup(EnvLogLevel)
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = level

	if raw, ok := lookup(EnvJSONLogs); ok && raw != "" {
		cfg.JSONLogs, err = strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
	}

	if raw, ok := lookup(EnvSessionFile); ok && raw != "" {
		cfg.SessionFile, err = homedir.Expand(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSessionFile, err)
		}
	} else {
		cfg.SessionFile, err = DefaultSessionFile()
		if err != nil {
			return cfg, err
		}
	}

	if raw, ok := lookup(EnvStartDir); ok && raw != "" {
		cfg.StartDir, err = homedir.Expand(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvStartDir, err)
		}
	}

	return cfg, nil
}

// DefaultSessionFile returns the per-user location of the session file.
func DefaultSessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			return "", fmt.Errorf("locate config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, sessionDirName, sessionFileName), nil
}
