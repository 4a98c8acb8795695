package run

import (
	"context"
	"fmt"

	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/data/storage/filestore"
	"github.com/xhd2015/studentlib/data/storage/http"
	"github.com/xhd2015/studentlib/data/storage/memory"
	"github.com/xhd2015/studentlib/data/storage/sqlite"
	"github.com/xhd2015/studentlib/internal/config"
)

func createLibraryService(conf StorageConfig) (storage.LibraryService, error) {
	switch conf.StorageType {
	case storage.StorageType_Memory:
		return memory.New(), nil
	case storage.StorageType_File:
		libraryFile, err := config.GetLibraryJSONFile()
		if err != nil {
			return nil, err
		}
		return filestore.New(libraryFile)
	case storage.StorageType_SQLite:
		sqliteFile, err := config.GetSqliteFile()
		if err != nil {
			return nil, err
		}
		return sqlite.New(sqliteFile)
	case storage.StorageType_Server:
		return http.NewLibraryService(http.NewClient(conf.ServerAddr, conf.ServerToken)), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", conf.StorageType)
	}
}

// CreateLibraryManager resolves the storage configuration and returns an
// initialized manager. The caller closes manager.LibraryService.
func CreateLibraryManager(ctx context.Context, storageType, serverAddr, serverToken string) (*data.LibraryManager, error) {
	conf, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return nil, err
	}
	return openManager(ctx, conf)
}

func openManager(ctx context.Context, conf StorageConfig) (*data.LibraryManager, error) {
	svc, err := createLibraryService(conf)
	if err != nil {
		return nil, err
	}
	// the server back-end assigns ids itself
	manager := data.NewLibraryManager(svc, nil)
	if err := manager.Init(ctx); err != nil {
		svc.Close()
		return nil, err
	}
	return manager, nil
}
