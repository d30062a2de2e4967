package domain

import (
	"testing"
)

func TestSectionIDTitle(t *testing.T) {
	tests := []struct {
		id       SectionID
		expected string
	}{
		{SectionFindings, "Findings & Observations"},
		{SectionAlarms, "Alarms & Anomalies"},
		{SectionDiagnostics, "Diagnostics"},
		{SectionRecommendations, "Recommendations"},
		{SectionRaw, "Summary & Insights"},
		{SectionID("unknown"), "Summary & Insights"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := tt.id.Title(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDayGroupRange(t *testing.T) {
	g := DayGroup{Date: "2025-07-11", RangeStart: "09:00", RangeEnd: "13:00"}
	if got := g.Range(); got != "09:00–13:00" {
		t.Errorf("expected 09:00–13:00, got %s", got)
	}
}

func TestDecomposedLineHasLabel(t *testing.T) {
	label := "Humidity"

	if (&DecomposedLine{Body: "48%"}).HasLabel() {
		t.Error("line without label should report HasLabel() = false")
	}
	if !(&DecomposedLine{Label: &label, Body: "48%"}).HasLabel() {
		t.Error("line with label should report HasLabel() = true")
	}
}

func TestAnnotationIsFallback(t *testing.T) {
	tests := []struct {
		name     string
		sections []AnnotatedSection
		expected bool
	}{
		{
			name:     "single raw section",
			sections: []AnnotatedSection{{Section: Section{ID: SectionRaw}}},
			expected: true,
		},
		{
			name:     "recognized section",
			sections: []AnnotatedSection{{Section: Section{ID: SectionFindings}}},
			expected: false,
		},
		{
			name: "several sections",
			sections: []AnnotatedSection{
				{Section: Section{ID: SectionFindings}},
				{Section: Section{ID: SectionAlarms}},
			},
			expected: false,
		},
		{
			name:     "no sections",
			sections: nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Annotation{Sections: tt.sections}
			if a.IsFallback() != tt.expected {
				t.Errorf("expected IsFallback() = %v", tt.expected)
			}
		})
	}
}

func TestCollapseStateToggle(t *testing.T) {
	groups := []DayGroup{
		{Date: "2025-07-11", Collapsed: true},
		{Date: "2025-07-12", Collapsed: false},
	}
	state := NewCollapseState(groups)

	if !state.IsCollapsed("2025-07-11") {
		t.Error("expected 2025-07-11 to start collapsed")
	}
	if state.Toggle("2025-07-12") != true {
		t.Error("expected toggle to collapse 2025-07-12")
	}
	if groups[1].Collapsed {
		t.Error("toggle must not write back into the day group")
	}
	if state.IsCollapsed("2025-07-13") {
		t.Error("unknown dates are expanded")
	}
}

func TestLookupMetric(t *testing.T) {
	tests := []struct {
		text      string
		found     bool
		canonical string
	}{
		{"CO2", true, "CO2"},
		{"co₂", true, "CO2"},
		{"temp", true, "Temperature"},
		{"rh", true, "Humidity"},
		{"Door events", true, "Door events"},
		{"Pressure", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, ok := LookupMetric(tt.text)
			if ok != tt.found {
				t.Fatalf("expected found = %v, got %v", tt.found, ok)
			}
			if m.Canonical != tt.canonical {
				t.Errorf("expected canonical %q, got %q", tt.canonical, m.Canonical)
			}
		})
	}
}

func TestMetricTermsByLength(t *testing.T) {
	terms := MetricTermsByLength()

	if len(terms) != len(Vocabulary) {
		t.Fatalf("expected %d terms, got %d", len(Vocabulary), len(terms))
	}
	for i := 1; i < len(terms); i++ {
		if len(terms[i-1]) < len(terms[i]) {
			t.Errorf("terms not sorted longest first: %q before %q", terms[i-1], terms[i])
		}
	}

	index := func(term string) int {
		for i, t := range terms {
			if t == term {
				return i
			}
		}
		return -1
	}
	if index("Temperature") > index("Temp") {
		t.Error("expected Temperature before Temp")
	}
}
