package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"plantviewer/internal/window"
)

const (
	EnvSettingsPath  = "PLANTVIEWER_SETTINGS_PATH"
	EnvDBPath        = "PLANTVIEWER_DB_PATH"
	EnvPreloadScript = "PLANTVIEWER_PRELOAD"
	EnvLogLevel      = "PLANTVIEWER_LOG_LEVEL"
	EnvWatchSettings = "PLANTVIEWER_WATCH_SETTINGS"
	EnvHistory       = "PLANTVIEWER_HISTORY"

	// PreloadDisabled as the preload path turns the preload script off.
	PreloadDisabled = "off"
)

type Config struct {
	SettingsPath  string
	DBPath        string
	LogLevel      logger.LogLevel
	WatchSettings bool
	// History enables the sqlite selection history.
	History bool
	Window  window.Config
}

func Default() Config {
	level := logger.INFO
	if IsDevelopment() {
		level = logger.DEBUG
	}
	return Config{
		SettingsPath:  DefaultSettingsPath(),
		DBPath:        DefaultDBPath(),
		LogLevel:      level,
		WatchSettings: true,
		History:       true,
		Window:        window.DefaultConfig(),
	}
}

// Load reads .env (when present) and then the environment on top of the
// defaults.
func Load() (Config, error) {
	if err := LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv applies variables looked up through getenv over the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvSettingsPath)); v != "" {
		cfg.SettingsPath = v
	}
	if v := strings.TrimSpace(getenv(EnvDBPath)); v != "" {
		cfg.DBPath = v
	}
	switch v := strings.TrimSpace(getenv(EnvPreloadScript)); v {
	case "":
	case PreloadDisabled:
		cfg.Window.PreloadScript = ""
	default:
		cfg.Window.PreloadScript = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := logger.StringToLogLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	var err error
	if cfg.WatchSettings, err = boolEnv(getenv, EnvWatchSettings, cfg.WatchSettings); err != nil {
		return Config{}, err
	}
	if cfg.History, err = boolEnv(getenv, EnvHistory, cfg.History); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func boolEnv(getenv func(string) string, key string, def bool) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
