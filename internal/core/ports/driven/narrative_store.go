package driven

import (
	"context"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// NarrativeStore handles archived narrative persistence (PostgreSQL)
type NarrativeStore interface {
	// Save creates or updates a narrative record
	Save(ctx context.Context, record *domain.NarrativeRecord) error

	// Get retrieves a narrative record by ID
	Get(ctx context.Context, id string) (*domain.NarrativeRecord, error)

	// GetByFingerprint retrieves the most recent record for a narrative fingerprint
	GetByFingerprint(ctx context.Context, fingerprint string) (*domain.NarrativeRecord, error)

	// List retrieves records, newest first
	List(ctx context.Context, limit, offset int) ([]*domain.NarrativeRecord, error)

	// Count returns the total number of records
	Count(ctx context.Context) (int, error)

	// Delete deletes a narrative record
	Delete(ctx context.Context, id string) error
}

// IDGenerator generates unique, time-ordered record IDs
type IDGenerator interface {
	NewID() string
}
