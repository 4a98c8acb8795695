package states

import "sync"

// MutexMap provides thread-safe access to a map[int64]bool
type MutexMap struct {
	mu   sync.RWMutex
	data map[int64]bool
}

func NewMutexMap() *MutexMap {
	return &MutexMap{
		data: make(map[int64]bool),
	}
}

func (m *MutexMap) Get(key int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}

func (m *MutexMap) Set(key int64, value bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MutexMap) Toggle(key int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = !m.data[key]
}

// Copy returns a snapshot of the map
func (m *MutexMap) Copy() map[int64]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[int64]bool, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}
