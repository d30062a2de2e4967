package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Ensure MockNarrativeStore implements NarrativeStore
var _ driven.NarrativeStore = (*MockNarrativeStore)(nil)

// MockNarrativeStore is an in-memory NarrativeStore for testing
type MockNarrativeStore struct {
	mu      sync.RWMutex
	records map[string]*domain.NarrativeRecord

	// SaveErr, when set, is returned by Save
	SaveErr error
}

// NewMockNarrativeStore creates a new MockNarrativeStore
func NewMockNarrativeStore() *MockNarrativeStore {
	return &MockNarrativeStore{
		records: make(map[string]*domain.NarrativeRecord),
	}
}

func (m *MockNarrativeStore) Save(ctx context.Context, record *domain.NarrativeRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockNarrativeStore) Get(ctx context.Context, id string) (*domain.NarrativeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockNarrativeStore) GetByFingerprint(ctx context.Context, fingerprint string) (*domain.NarrativeRecord, error) {
	var latest *domain.NarrativeRecord
	for _, record := range m.sorted() {
		if record.Fingerprint == fingerprint {
			latest = record
			break
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockNarrativeStore) List(ctx context.Context, limit, offset int) ([]*domain.NarrativeRecord, error) {
	all := m.sorted()
	if offset >= len(all) {
		return []*domain.NarrativeRecord{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockNarrativeStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

func (m *MockNarrativeStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// sorted returns records newest first, ties broken by ID descending
func (m *MockNarrativeStore) sorted() []*domain.NarrativeRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*domain.NarrativeRecord, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}
