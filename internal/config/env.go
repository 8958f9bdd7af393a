package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// findProjectRoot walks up from the working directory to the first directory
// holding a go.mod. It returns os.ErrNotExist when there is none, as in an
// installed build.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// LoadEnv loads .env from the project root without overriding variables
// already set in the environment.
func LoadEnv() error {
	root, err := findProjectRoot()
	if err != nil {
		return err
	}
	return godotenv.Load(filepath.Join(root, ".env"))
}
