package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// AnnotationCache memoizes annotations by narrative identity (Redis or in-process)
type AnnotationCache interface {
	// Get retrieves a cached annotation; returns domain.ErrNotFound on miss
	Get(ctx context.Context, key string) (*domain.Annotation, error)

	// Set stores an annotation; a zero TTL means no expiry
	Set(ctx context.Context, key string, annotation *domain.Annotation, ttl time.Duration) error

	// Delete removes a cached annotation
	Delete(ctx context.Context, key string) error
}
