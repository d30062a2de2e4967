package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.NarrativeStore = (*NarrativeStore)(nil)

const narrativeColumns = `id, fingerprint, query, narrative, format, annotation, context, created_by, created_at`

// NarrativeStore implements driven.NarrativeStore using PostgreSQL.
// Annotations and retrieval context are stored as JSONB next to the source narrative.
type NarrativeStore struct {
	db *DB
}

// NewNarrativeStore creates a new NarrativeStore
func NewNarrativeStore(db *DB) *NarrativeStore {
	return &NarrativeStore{db: db}
}

// Save creates or updates a narrative record
func (s *NarrativeStore) Save(ctx context.Context, record *domain.NarrativeRecord) error {
	annotationJSON, err := json.Marshal(record.Annotation)
	if err != nil {
		return fmt.Errorf("failed to marshal annotation: %w", err)
	}

	// NULL when no retrieval context was supplied
	var contextJSON any
	if record.Context != nil {
		data, err := json.Marshal(record.Context)
		if err != nil {
			return fmt.Errorf("failed to marshal context: %w", err)
		}
		contextJSON = data
	}

	query := `
		INSERT INTO narratives (` + narrativeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			fingerprint = EXCLUDED.fingerprint,
			query = EXCLUDED.query,
			narrative = EXCLUDED.narrative,
			format = EXCLUDED.format,
			annotation = EXCLUDED.annotation,
			context = EXCLUDED.context
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.Fingerprint,
		NullIfEmpty(record.Query),
		record.Narrative,
		record.Format,
		annotationJSON,
		contextJSON,
		NullIfEmpty(record.CreatedBy),
		record.CreatedAt,
	)
	return err
}

// Get retrieves a narrative record by ID
func (s *NarrativeStore) Get(ctx context.Context, id string) (*domain.NarrativeRecord, error) {
	query := `SELECT ` + narrativeColumns + ` FROM narratives WHERE id = $1`
	return scanNarrative(s.db.QueryRowContext(ctx, query, id))
}

// GetByFingerprint retrieves the most recent record for a narrative fingerprint
func (s *NarrativeStore) GetByFingerprint(ctx context.Context, fingerprint string) (*domain.NarrativeRecord, error) {
	query := `
		SELECT ` + narrativeColumns + `
		FROM narratives
		WHERE fingerprint = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	return scanNarrative(s.db.QueryRowContext(ctx, query, fingerprint))
}

// List retrieves records, newest first
func (s *NarrativeStore) List(ctx context.Context, limit, offset int) ([]*domain.NarrativeRecord, error) {
	query := `
		SELECT ` + narrativeColumns + `
		FROM narratives
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.NarrativeRecord, 0)
	for rows.Next() {
		record, err := scanNarrative(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the total number of records
func (s *NarrativeStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM narratives`).Scan(&count)
	return count, err
}

// Delete deletes a narrative record
func (s *NarrativeStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM narratives WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNarrative(row rowScanner) (*domain.NarrativeRecord, error) {
	var record domain.NarrativeRecord
	var query, createdBy sql.NullString
	var annotationJSON, contextJSON []byte

	err := row.Scan(
		&record.ID,
		&record.Fingerprint,
		&query,
		&record.Narrative,
		&record.Format,
		&annotationJSON,
		&contextJSON,
		&createdBy,
		&record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	record.Query = query.String
	record.CreatedBy = createdBy.String

	var annotation domain.Annotation
	if err := json.Unmarshal(annotationJSON, &annotation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal annotation for %s: %w", record.ID, err)
	}
	record.Annotation = &annotation

	if len(contextJSON) > 0 {
		var ec domain.EvidenceContext
		if err := json.Unmarshal(contextJSON, &ec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal context for %s: %w", record.ID, err)
		}
		record.Context = &ec
	}

	return &record, nil
}
