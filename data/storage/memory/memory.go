package memory

import (
	"context"
	"sync"

	"github.com/xhd2015/studentlib/data/seed"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/models"
)

// MemoryStore keeps the library in process memory only,
// every new store starts from the seed
type MemoryStore struct {
	mu  sync.RWMutex
	lib *models.Library
}

var _ storage.LibraryService = (*MemoryStore)(nil)

func New() *MemoryStore {
	return &MemoryStore{
		lib: seed.Library(),
	}
}

// NewWith starts from lib instead of the seed
func NewWith(lib *models.Library) *MemoryStore {
	return &MemoryStore{
		lib: lib.Clone(),
	}
}

func (ms *MemoryStore) Load(ctx context.Context) (*models.Library, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.lib.Clone(), nil
}

func (ms *MemoryStore) Save(ctx context.Context, lib *models.Library) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lib = lib.Clone()
	return nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
