//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultSettingsPath returns common/settings.json under the install
// directory, next to the executable.
func DefaultSettingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Failed to locate executable: %v. Using working directory.", err)
		return filepath.Join("common", "settings.json")
	}
	return filepath.Join(filepath.Dir(exe), "common", "settings.json")
}

// DefaultDBPath returns the history database path in the user's config dir.
func DefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "plantviewer.db"
	}

	appDir := filepath.Join(configDir, "plantviewer")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "plantviewer.db"
	}

	return filepath.Join(appDir, "plantviewer.db")
}

func IsDevelopment() bool {
	return false
}
