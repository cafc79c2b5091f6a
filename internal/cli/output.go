package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/pfrederiksen/daily-monitor/internal/monitor"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// DayEvents is one day's slice of the log, ready for output.
type DayEvents struct {
	Date   string          `json:"date"`
	Events []monitor.Event `json:"events"`
}

// CollectDays flattens a data snapshot into chronologically sorted days.
// When dateKey is non-empty only that day is returned (possibly with no
// events).
func CollectDays(data map[string][]monitor.Event, dateKey string) []DayEvents {
	if dateKey != "" {
		return []DayEvents{{Date: dateKey, Events: data[dateKey]}}
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sortDateKeys(keys)

	days := make([]DayEvents, 0, len(keys))
	for _, key := range keys {
		days = append(days, DayEvents{Date: key, Events: data[key]})
	}
	return days
}

// WriteOutput writes the days in the specified format
func WriteOutput(w io.Writer, days []DayEvents, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, days)
	case FormatText:
		return writeText(w, days)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs days as JSON
func writeJSON(w io.Writer, days []DayEvents) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(days)
}

// writeText outputs days as human-readable text
func writeText(w io.Writer, days []DayEvents) error {
	total := 0
	for _, day := range days {
		fmt.Fprintf(w, "%s:\n", day.Date)
		if len(day.Events) == 0 {
			fmt.Fprintln(w, "  (no events)")
			continue
		}
		for _, evt := range day.Events {
			fmt.Fprintf(w, "  %s  %s\n", evt.Timestamp, evt.Value)
			total++
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events across %d days\n", total, len(days))
	return nil
}
