//go:build !prod

package config

import "path/filepath"

// In dev mode state lives in the project tree for easy inspection.

func DefaultSettingsPath() string {
	return filepath.Join("common", "settings.json")
}

func DefaultDBPath() string {
	return "plantviewer.db"
}

func IsDevelopment() bool {
	return true
}
