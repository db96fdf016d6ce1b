package store

// MemoryStore is an in-process HighScoreStore for tests and store-less hosts
type MemoryStore struct {
	value int
	saves int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (m *MemoryStore) Load() int {
	return m.value
}

func (m *MemoryStore) Save(n int) error {
	m.value = n
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	return m.saves
}
