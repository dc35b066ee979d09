package session

import (
	"context"
	"sync"
)

// MemoryRepository keeps session state for the lifetime of the process.
// Used as the failover target when redis is unavailable.
type MemoryRepository struct {
	values sync.Map
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (string, error) {
	val, ok := r.values.Load(key)
	if !ok {
		return "", nil
	}
	return val.(string), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key, value string) error {
	r.values.Store(key, value)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		r.values.Delete(k)
	}
	return nil
}
