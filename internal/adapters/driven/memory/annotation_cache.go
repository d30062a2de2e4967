package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AnnotationCache = (*AnnotationCache)(nil)

// DefaultSize is the number of annotations kept when no size is configured
const DefaultSize = 1024

// entry holds the annotation encoded, so callers never share state with the cache
type entry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// AnnotationCache is an in-process, size-bounded AnnotationCache used when
// Redis is not configured. Least recently used annotations are evicted first;
// expired entries are dropped lazily on read.
type AnnotationCache struct {
	cache *lru.Cache
	now   func() time.Time
}

// NewAnnotationCache creates a cache holding at most size annotations
func NewAnnotationCache(size int) (*AnnotationCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &AnnotationCache{cache: cache, now: time.Now}, nil
}

// Get retrieves a cached annotation
func (c *AnnotationCache) Get(ctx context.Context, key string) (*domain.Annotation, error) {
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, domain.ErrNotFound
	}

	e := value.(entry)
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.cache.Remove(key)
		return nil, domain.ErrNotFound
	}

	var annotation domain.Annotation
	if err := json.Unmarshal(e.data, &annotation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal annotation: %w", err)
	}
	return &annotation, nil
}

// Set stores an annotation. A zero TTL keeps it until evicted.
func (c *AnnotationCache) Set(ctx context.Context, key string, annotation *domain.Annotation, ttl time.Duration) error {
	data, err := json.Marshal(annotation)
	if err != nil {
		return fmt.Errorf("failed to marshal annotation: %w", err)
	}

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.cache.Add(key, e)
	return nil
}

// Delete removes a cached annotation
func (c *AnnotationCache) Delete(ctx context.Context, key string) error {
	c.cache.Remove(key)
	return nil
}

// Len returns the number of cached entries, expired ones included
func (c *AnnotationCache) Len() int {
	return c.cache.Len()
}
