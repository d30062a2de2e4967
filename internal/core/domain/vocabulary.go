package domain

import (
	"sort"
	"strings"
)

// MetricTerm is a known metric spelling and how it is displayed
type MetricTerm struct {
	Term      string // Spelling as it appears in narratives
	Canonical string // Shared name for spellings of the same metric
	Display   string // Preferred display spelling
}

// Vocabulary lists the metric names recognized in narrative bodies
var Vocabulary = []MetricTerm{
	{Term: "Temperature", Canonical: "Temperature", Display: "Temperature"},
	{Term: "Temp", Canonical: "Temperature", Display: "Temp"},
	{Term: "Humidity", Canonical: "Humidity", Display: "Humidity"},
	{Term: "RH", Canonical: "Humidity", Display: "RH"},
	{Term: "CO2", Canonical: "CO2", Display: "CO₂"},
	{Term: "CO₂", Canonical: "CO2", Display: "CO₂"},
	{Term: "PM2.5", Canonical: "PM2.5", Display: "PM2.5"},
	{Term: "PM10", Canonical: "PM10", Display: "PM10"},
	{Term: "IEQ", Canonical: "IEQ", Display: "IEQ"},
	{Term: "Illuminance", Canonical: "Illuminance", Display: "Illuminance"},
	{Term: "Occupancy", Canonical: "Occupancy", Display: "Occupancy"},
	{Term: "Spikes", Canonical: "Spikes", Display: "Spikes"},
	{Term: "Noise", Canonical: "Noise", Display: "Noise"},
	{Term: "VOC", Canonical: "VOC", Display: "VOC"},
	{Term: "Door events", Canonical: "Door events", Display: "Door events"},
	{Term: "Notable hours", Canonical: "Notable hours", Display: "Notable hours"},
	{Term: "Particles", Canonical: "Particles", Display: "Particles"},
	{Term: "Ventilation", Canonical: "Ventilation", Display: "Ventilation"},
}

// LookupMetric finds a vocabulary entry case-insensitively
func LookupMetric(text string) (MetricTerm, bool) {
	for _, m := range Vocabulary {
		if strings.EqualFold(m.Term, text) {
			return m, true
		}
	}
	return MetricTerm{}, false
}

// MetricTermsByLength returns all spellings, longest first, so that
// alternations prefer "Temperature" over "Temp".
func MetricTermsByLength() []string {
	terms := make([]string, len(Vocabulary))
	for i, m := range Vocabulary {
		terms[i] = m.Term
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	return terms
}
