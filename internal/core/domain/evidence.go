package domain

import (
	"fmt"
	"time"
)

// AllHoursLabel is shown when a question is not restricted to an hour window
const AllHoursLabel = "All 24 Hours"

// HourWindow is a [start, end] pair of hours on a 24h clock
type HourWindow [2]int

// ParsedTime is how the question behind a narrative was interpreted in time
type ParsedTime struct {
	Dates        []string    `json:"dates"`
	HourWindow   *HourWindow `json:"hour_window"` // nil means the whole day
	CleanedQuery string      `json:"cleaned_query"`
}

// HourRange formats the hour window, e.g. "02:00–05:00"
func (p *ParsedTime) HourRange() string {
	if p == nil || p.HourWindow == nil {
		return AllHoursLabel
	}
	return FormatHour(p.HourWindow[0]) + "–" + FormatHour(p.HourWindow[1])
}

// Validate checks dates and hour bounds
func (p *ParsedTime) Validate() error {
	for _, date := range p.Dates {
		if !isDate(date) {
			return fmt.Errorf("%w: parsed date %q", ErrInvalidInput, date)
		}
	}
	if p.HourWindow != nil {
		for _, h := range p.HourWindow {
			if h < 0 || h > 24 {
				return fmt.Errorf("%w: hour window %v", ErrInvalidInput, *p.HourWindow)
			}
		}
	}
	return nil
}

// EvidenceMetrics are the sensor readings attached to an evidence chunk
type EvidenceMetrics struct {
	CO2  *float64 `json:"co2,omitempty"`
	PM25 *float64 `json:"pm25,omitempty"`
	IEQ  *float64 `json:"ieq,omitempty"`
}

// EvidenceChunk is one hourly piece of evidence the narrative was built from
type EvidenceChunk struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Hour      int              `json:"hour"`
	Source    string           `json:"source"`
	Snippet   string           `json:"snippet"`
	Metrics   *EvidenceMetrics `json:"metrics,omitempty"`
	IsAnomaly bool             `json:"isAnomaly"` // Upstream wire name
}

// Stamp returns the display position of the chunk, e.g. "2025-09-11 @ 02:00"
func (c EvidenceChunk) Stamp() string {
	return c.Date + " @ " + FormatHour(c.Hour)
}

// Validate checks the chunk's date and hour
func (c EvidenceChunk) Validate() error {
	if !isDate(c.Date) {
		return fmt.Errorf("%w: evidence %q date %q", ErrInvalidInput, c.ID, c.Date)
	}
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: evidence %q hour %d", ErrInvalidInput, c.ID, c.Hour)
	}
	return nil
}

// EvidenceContext is the retrieval context delivered alongside a narrative
type EvidenceContext struct {
	ParsedData     *ParsedTime     `json:"parsed_data,omitempty"`
	Evidence       []EvidenceChunk `json:"evidence,omitempty"`
	ProcessingTime float64         `json:"processing_time,omitempty"` // Seconds spent upstream
}

// IsEmpty reports whether no context was supplied
func (c *EvidenceContext) IsEmpty() bool {
	return c == nil || (c.ParsedData == nil && len(c.Evidence) == 0 && c.ProcessingTime == 0)
}

// Validate checks the parsed time and every evidence chunk
func (c *EvidenceContext) Validate() error {
	if c == nil {
		return nil
	}
	if c.ParsedData != nil {
		if err := c.ParsedData.Validate(); err != nil {
			return err
		}
	}
	for _, chunk := range c.Evidence {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}
	if c.ProcessingTime < 0 {
		return fmt.Errorf("%w: processing time %v", ErrInvalidInput, c.ProcessingTime)
	}
	return nil
}

// EvidenceTimeline is the presentation of an evidence context
type EvidenceTimeline struct {
	Dates          []string        `json:"dates"`
	HourWindow     string          `json:"hour_window"` // "HH:00–HH:00" or AllHoursLabel
	CleanedQuery   string          `json:"cleaned_query,omitempty"`
	Chunks         []EvidenceChunk `json:"chunks"` // Ordered by date, then hour
	AnomalyCount   int             `json:"anomaly_count"`
	ProcessingTime float64         `json:"processing_time,omitempty"`
}

// FormatHour renders an hour as "HH:00"
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
