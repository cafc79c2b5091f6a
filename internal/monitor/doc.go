// Package monitor provides the daily event log at the heart of daily-monitor.
//
// The monitor package records timestamped observations (headline text or
// open-slot counts) keyed by calendar date, persists them as pretty-printed
// JSON, and suppresses consecutive duplicate values within a day. Date keys
// use the unpadded "{year}-{month}-{day}" form, and timestamps are rendered
// in a fixed timezone (America/New_York by default) so runs from different
// hosts agree on what "today" means.
package monitor
