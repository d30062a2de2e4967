package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

func TestNewAnnotationCache_DefaultSize(t *testing.T) {
	cache, err := NewAnnotationCache(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache == nil {
		t.Fatal("expected non-nil cache")
	}
}

func TestAnnotationCache_SetAndGet(t *testing.T) {
	cache, _ := NewAnnotationCache(10)
	ctx := context.Background()
	annotation := &domain.Annotation{Fingerprint: "abc"}

	if err := cache.Set(ctx, "k1", annotation, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fingerprint != "abc" {
		t.Errorf("expected fingerprint abc, got %q", got.Fingerprint)
	}

	if _, err := cache.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnnotationCache_Expiry(t *testing.T) {
	cache, _ := NewAnnotationCache(10)
	ctx := context.Background()

	now := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_ = cache.Set(ctx, "short", &domain.Annotation{}, time.Minute)
	_ = cache.Set(ctx, "forever", &domain.Annotation{}, 0)

	now = now.Add(2 * time.Minute)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected expired entry to miss, got %v", err)
	}
	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("expected entry without ttl to survive, got %v", err)
	}
	if cache.Len() != 1 {
		t.Errorf("expected expired entry to be removed, len %d", cache.Len())
	}
}

func TestAnnotationCache_Eviction(t *testing.T) {
	cache, _ := NewAnnotationCache(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("k%d", i), &domain.Annotation{}, 0)
	}

	if _, err := cache.Get(ctx, "k0"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected least recently used entry to be evicted, got %v", err)
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
}

func TestAnnotationCache_Delete(t *testing.T) {
	cache, _ := NewAnnotationCache(2)
	ctx := context.Background()

	_ = cache.Set(ctx, "k1", &domain.Annotation{}, 0)
	if err := cache.Delete(ctx, "k1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.Get(ctx, "k1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAnnotationCache_ReturnsCopies(t *testing.T) {
	cache, _ := NewAnnotationCache(10)
	ctx := context.Background()
	annotation := &domain.Annotation{
		Fingerprint: "abc",
		Timeline: []domain.DayGroup{
			{Date: "2025-07-11", Times: []string{"09:00"}, RangeStart: "09:00", RangeEnd: "10:00", Collapsed: false},
		},
	}

	_ = cache.Set(ctx, "k1", annotation, 0)

	// Mutating the stored value after Set must not reach the cache
	annotation.Timeline[0].Collapsed = true

	first, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Timeline[0].Collapsed {
		t.Fatal("expected cached default to be unaffected by the caller")
	}

	// Toggling a returned annotation must not reach later readers
	first.Timeline[0].Collapsed = true
	first.Timeline[0].Times[0] = "23:00"

	second, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh annotation per Get")
	}
	if second.Timeline[0].Collapsed || second.Timeline[0].Times[0] != "09:00" {
		t.Errorf("expected cached timeline unchanged, got %+v", second.Timeline[0])
	}
}
