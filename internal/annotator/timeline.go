package annotator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

var timelineCitationPattern = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2})\]`)

// ExtractTimelineEntries returns every strict "[date time]" citation in order
// of appearance. Citations without a time are skipped.
func ExtractTimelineEntries(narrative string) []domain.TimelineEntry {
	matches := timelineCitationPattern.FindAllStringSubmatch(narrative, -1)
	entries := make([]domain.TimelineEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, domain.TimelineEntry{Date: m[1], Time: m[2]})
	}
	return entries
}

// BuildTimeline groups cited times by date, ascending, and seeds the
// collapse default from the engine's threshold. An empty result means
// no timeline is available.
func (e *Engine) BuildTimeline(narrative string) []domain.DayGroup {
	byDate := make(map[string]map[string]struct{})
	for _, entry := range ExtractTimelineEntries(narrative) {
		times, ok := byDate[entry.Date]
		if !ok {
			times = make(map[string]struct{})
			byDate[entry.Date] = times
		}
		times[entry.Time] = struct{}{}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]domain.DayGroup, 0, len(dates))
	for _, date := range dates {
		times := make([]string, 0, len(byDate[date]))
		for t := range byDate[date] {
			times = append(times, t)
		}
		sort.Strings(times)

		groups = append(groups, domain.DayGroup{
			Date:       date,
			Times:      times,
			RangeStart: times[0],
			RangeEnd:   rangeEnd(times[len(times)-1]),
			Collapsed:  len(times) >= e.config.CollapseThreshold,
		})
	}
	return groups
}

// rangeEnd is one hour after the given "HH:MM", wrapping 23 to 00.
func rangeEnd(hhmm string) string {
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return hhmm
	}
	return fmt.Sprintf("%02d%s", (hour+1)%24, hhmm[2:])
}
