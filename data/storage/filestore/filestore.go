package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xhd2015/studentlib/data/seed"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/models"
)

// FileStore persists the library as one JSON document
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	data     *FileData
}

type FileData struct {
	Library *models.Library `json:"library"`
}

var _ storage.LibraryService = (*FileStore)(nil)

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data: &FileData{
			Library: seed.Library(),
		},
	}

	if err := fs.load(); err != nil {
		// missing file is created on first save
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
	}

	return fs, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var fileData FileData
	if err := json.Unmarshal(data, &fileData); err != nil {
		return err
	}
	if fileData.Library != nil {
		fs.data = &fileData
	}
	return nil
}

func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fs.filePath, data, 0644)
}

func (fs *FileStore) Load(ctx context.Context) (*models.Library, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.data.Library.Clone(), nil
}

func (fs *FileStore) Save(ctx context.Context, lib *models.Library) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data.Library = lib.Clone()
	if err := fs.save(); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (fs *FileStore) Close() error {
	return nil
}
