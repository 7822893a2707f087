package db

import (
	"sync"

	"github.com/f8wq/TFL-Manager/model"
)

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[string]model.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[string]model.Submission)}
}

// Put stores sub, silently replacing any entry with the same message id.
func (m *MemoryStore) Put(sub *model.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.submissions[sub.MessageID] = *sub
	return nil
}

func (m *MemoryStore) Get(messageID string) (*model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, found := m.submissions[messageID]
	if !found {
		return nil, nil
	}
	return &sub, nil
}

func (m *MemoryStore) Remove(messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.submissions, messageID)
	return nil
}

// Len reports how many submissions are pending.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.submissions)
}
