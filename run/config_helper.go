package run

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/models"
)

const DEFAULT_STORAGE = storage.StorageType_Memory

const (
	ENV_STORAGE      = "STUDENTLIB_STORAGE"
	ENV_SERVER_ADDR  = "STUDENTLIB_SERVER_ADDR"
	ENV_SERVER_TOKEN = "STUDENTLIB_SERVER_TOKEN"
)

// StorageConfig holds storage-related configuration values
type StorageConfig struct {
	StorageType string
	ServerAddr  string
	ServerToken string
}

// loadDotEnv reads .env from the working directory if there is one.
// Variables already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyConfigDefaults fills unset values from the environment, then the
// saved config, then the defaults
func ApplyConfigDefaults(storageType, serverAddr, serverToken string) (StorageConfig, error) {
	if err := loadDotEnv(); err != nil {
		return StorageConfig{}, err
	}
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return StorageConfig{}, err
	}
	return resolveStorageConfig(StorageConfig{
		StorageType: storageType,
		ServerAddr:  serverAddr,
		ServerToken: serverToken,
	}, os.Getenv, savedConfig)
}

func resolveStorageConfig(flagConfig StorageConfig, getenv func(string) string, savedConfig *models.Config) (StorageConfig, error) {
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	pick := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}

	conf := StorageConfig{
		StorageType: pick(flagConfig.StorageType, getenv(ENV_STORAGE), savedConfig.StorageType, DEFAULT_STORAGE),
		ServerAddr:  pick(flagConfig.ServerAddr, getenv(ENV_SERVER_ADDR), savedConfig.ServerAddr),
		ServerToken: pick(flagConfig.ServerToken, getenv(ENV_SERVER_TOKEN), savedConfig.ServerToken),
	}
	conf.StorageType = strings.ToLower(conf.StorageType)

	if !slices.Contains(storage.StorageTypes, conf.StorageType) {
		return StorageConfig{}, fmt.Errorf("unsupported storage type: %s, available: %s", conf.StorageType, strings.Join(storage.StorageTypes, ", "))
	}
	if conf.StorageType == storage.StorageType_Server && conf.ServerAddr == "" {
		return StorageConfig{}, fmt.Errorf("--server-addr is required when --storage=server")
	}
	return conf, nil
}
