package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is where a marketplace keeps its plugincheck settings.
func DefaultConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
