package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Ensure MockAnnotationCache implements AnnotationCache
var _ driven.AnnotationCache = (*MockAnnotationCache)(nil)

// MockAnnotationCache is an in-memory AnnotationCache for testing.
// TTLs are recorded but never enforced.
type MockAnnotationCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.Annotation
	TTLs    map[string]time.Duration

	// GetErr and SetErr, when set, are returned by Get and Set
	GetErr error
	SetErr error

	Gets int
	Sets int
}

// NewMockAnnotationCache creates a new MockAnnotationCache
func NewMockAnnotationCache() *MockAnnotationCache {
	return &MockAnnotationCache{
		entries: make(map[string]*domain.Annotation),
		TTLs:    make(map[string]time.Duration),
	}
}

func (m *MockAnnotationCache) Get(ctx context.Context, key string) (*domain.Annotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	annotation, ok := m.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return annotation, nil
}

func (m *MockAnnotationCache) Set(ctx context.Context, key string, annotation *domain.Annotation, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.entries[key] = annotation
	m.TTLs[key] = ttl
	return nil
}

func (m *MockAnnotationCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	delete(m.TTLs, key)
	return nil
}

// Has reports whether a key is cached
func (m *MockAnnotationCache) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}
