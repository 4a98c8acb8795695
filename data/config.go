package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xhd2015/studentlib/internal/config"
	"github.com/xhd2015/studentlib/models"
)

// LoadConfig returns nil without error when no config has been saved yet
func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(configFile)
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	return saveConfigFile(configFile, conf)
}

func loadConfigFile(configFile string) (*models.Config, error) {
	configData, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(configData) == 0 {
		return nil, nil
	}

	var conf models.Config
	if err := json.Unmarshal(configData, &conf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return &conf, nil
}

func saveConfigFile(configFile string, conf *models.Config) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
