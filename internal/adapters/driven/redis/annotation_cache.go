package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AnnotationCache = (*AnnotationCache)(nil)

// annotationPrefix namespaces cache keys in a shared Redis
const annotationPrefix = "annotation:"

// AnnotationCache implements driven.AnnotationCache using Redis.
// Annotations are stored as JSON and expire through Redis TTL.
type AnnotationCache struct {
	client *redis.Client
}

// NewAnnotationCache creates a new Redis-backed AnnotationCache
func NewAnnotationCache(client *redis.Client) *AnnotationCache {
	return &AnnotationCache{client: client}
}

// Get retrieves a cached annotation
func (c *AnnotationCache) Get(ctx context.Context, key string) (*domain.Annotation, error) {
	data, err := c.client.Get(ctx, annotationPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get annotation: %w", err)
	}

	var annotation domain.Annotation
	if err := json.Unmarshal(data, &annotation); err != nil {
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

	if err := c.client.Set(ctx, annotationPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set annotation: %w", err)
	}

	return nil
}

// Delete removes a cached annotation
func (c *AnnotationCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, annotationPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable
func (c *AnnotationCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
