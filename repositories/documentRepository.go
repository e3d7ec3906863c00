package repositories

import (
	"context"
	"sync"
)

// DocumentRepository stores named JSON documents.
type DocumentRepository interface {
	// Get returns the document and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryRepository keeps documents in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]string)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	val, ok := r.docs[key]
	return val, ok, nil
}

func (r *MemoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = value
	return nil
}
