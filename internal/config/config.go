package config

import (
	"os"
	"path/filepath"
)

const appDirName = "studentlib"

// GetConfigDir returns the per-user directory, honoring STUDENTLIB_HOME
func GetConfigDir() (string, error) {
	if home := os.Getenv("STUDENTLIB_HOME"); home != "" {
		return home, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// EnsureConfigDir creates the config dir if missing
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetLibraryJSONFile() (string, error) {
	return GetConfigFile("library.json")
}

func GetConfigJSONFile() (string, error) {
	return GetConfigFile("config.json")
}

func GetSqliteFile() (string, error) {
	return GetConfigFile("studentlib.db")
}

func GetLogDir() (string, error) {
	dir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}
	return logDir, nil
}
