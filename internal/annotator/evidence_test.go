package annotator

import (
	"reflect"
	"testing"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

func chunkIDs(chunks []domain.EvidenceChunk) []string {
	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID
	}
	return ids
}

func TestBuildEvidenceTimeline(t *testing.T) {
	tests := []struct {
		name      string
		ec        *domain.EvidenceContext
		window    string
		dates     []string
		ids       []string
		anomalies int
	}{
		{
			name:      "empty context",
			ec:        &domain.EvidenceContext{},
			window:    domain.AllHoursLabel,
			dates:     []string{},
			ids:       []string{},
			anomalies: 0,
		},
		{
			name: "ordered by date then hour",
			ec: &domain.EvidenceContext{
				Evidence: []domain.EvidenceChunk{
					{ID: "c", Date: "2025-09-12", Hour: 1},
					{ID: "b", Date: "2025-09-11", Hour: 23, IsAnomaly: true},
					{ID: "a", Date: "2025-09-11", Hour: 2, IsAnomaly: true},
				},
			},
			window:    domain.AllHoursLabel,
			dates:     []string{"2025-09-11", "2025-09-12"},
			ids:       []string{"a", "b", "c"},
			anomalies: 2,
		},
		{
			name: "same position keeps input order",
			ec: &domain.EvidenceContext{
				Evidence: []domain.EvidenceChunk{
					{ID: "second-source", Date: "2025-09-11", Hour: 2},
					{ID: "first-source", Date: "2025-09-11", Hour: 2},
				},
			},
			window:    domain.AllHoursLabel,
			dates:     []string{"2025-09-11"},
			ids:       []string{"second-source", "first-source"},
			anomalies: 0,
		},
		{
			name: "parsed time wins for dates and window",
			ec: &domain.EvidenceContext{
				ParsedData: &domain.ParsedTime{
					Dates:      []string{"2025-09-10", "2025-09-11"},
					HourWindow: &domain.HourWindow{2, 5},
				},
				Evidence: []domain.EvidenceChunk{{ID: "a", Date: "2025-09-11", Hour: 3}},
			},
			window:    "02:00–05:00",
			dates:     []string{"2025-09-10", "2025-09-11"},
			ids:       []string{"a"},
			anomalies: 0,
		},
		{
			name: "parsed time without dates",
			ec: &domain.EvidenceContext{
				ParsedData: &domain.ParsedTime{HourWindow: &domain.HourWindow{0, 24}},
				Evidence:   []domain.EvidenceChunk{{ID: "a", Date: "2025-09-11", Hour: 3}},
			},
			window:    "00:00–24:00",
			dates:     []string{"2025-09-11"},
			ids:       []string{"a"},
			anomalies: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEvidenceTimeline(tt.ec)
			if got.HourWindow != tt.window {
				t.Errorf("expected window %q, got %q", tt.window, got.HourWindow)
			}
			if !reflect.DeepEqual(got.Dates, tt.dates) {
				t.Errorf("expected dates %v, got %v", tt.dates, got.Dates)
			}
			if ids := chunkIDs(got.Chunks); !reflect.DeepEqual(ids, tt.ids) {
				t.Errorf("expected chunks %v, got %v", tt.ids, ids)
			}
			if got.AnomalyCount != tt.anomalies {
				t.Errorf("expected %d anomalies, got %d", tt.anomalies, got.AnomalyCount)
			}
		})
	}
}

func TestBuildEvidenceTimeline_Nil(t *testing.T) {
	if got := BuildEvidenceTimeline(nil); got != nil {
		t.Errorf("expected nil timeline, got %+v", got)
	}
}

func TestBuildEvidenceTimeline_CopiesInput(t *testing.T) {
	co2 := 950.0
	ec := &domain.EvidenceContext{
		ParsedData: &domain.ParsedTime{Dates: []string{"2025-09-11"}, CleanedQuery: "co2"},
		Evidence: []domain.EvidenceChunk{
			{ID: "b", Date: "2025-09-11", Hour: 5, Metrics: &domain.EvidenceMetrics{CO2: &co2}},
			{ID: "a", Date: "2025-09-11", Hour: 1},
		},
		ProcessingTime: 0.4,
	}

	got := BuildEvidenceTimeline(ec)

	if ec.Evidence[0].ID != "b" {
		t.Error("input evidence must not be reordered")
	}
	got.Chunks[1].Metrics.PM25 = &co2
	if ec.Evidence[0].Metrics.PM25 != nil {
		t.Error("timeline metrics must not alias the input")
	}
	got.Dates[0] = "changed"
	if ec.ParsedData.Dates[0] != "2025-09-11" {
		t.Error("timeline dates must not alias the input")
	}
	if got.CleanedQuery != "co2" || got.ProcessingTime != 0.4 {
		t.Errorf("expected query and processing time carried over, got %+v", got)
	}
}
