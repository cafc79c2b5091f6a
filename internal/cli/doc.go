// Package cli implements the command-line interface for daily-monitor.
//
// The cli package provides the Cobra-based CLI with subcommands for the
// two monitored sources (headline, availability) and a read-side show
// command with text/JSON output. It coordinates the scraper, ticketing,
// and monitor packages: each run fetches at most one data point per day,
// appends it to the per-day event log, and persists the log.
package cli
