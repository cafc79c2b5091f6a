package ticketing

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pfrederiksen/daily-monitor/internal/monitor"
)

// DefaultMaxLookahead bounds how many days a scan may walk forward. The
// scan normally ends well before this on two consecutive fully-open days;
// the bound keeps a persistently failing endpoint from driving the scan
// into an unbounded walk through the calendar.
const DefaultMaxLookahead = 365

// fullyOpenStreakToStop is how many consecutive days at the maximum open
// count end a scan: two untouched days in a row mean nothing further out
// has been booked yet.
const fullyOpenStreakToStop = 2

// AvailabilityFetcher is the capability the scanner needs from the API
// client. Returning (nil, nil) means the day has no data and is skipped.
type AvailabilityFetcher interface {
	FetchAvailability(year, month, day int) (*Availability, error)
}

// Scanner walks forward from today recording daily open-slot counts.
type Scanner struct {
	fetcher      AvailabilityFetcher
	events       monitorLog
	maxOpen      int
	maxLookahead int
	now          func() time.Time
	loc          *time.Location
	logger       zerolog.Logger
}

// monitorLog is the slice of the event log the scanner uses.
type monitorLog interface {
	Add(year, month, day int, value monitor.Value, ignoreRepeat bool) bool
}

// ScannerConfig holds the knobs for a scan.
type ScannerConfig struct {
	// MaxOpen is the venue's capacity: a day whose open count equals it
	// has had nothing booked.
	MaxOpen int
	// MaxLookahead caps the number of days scanned. Zero or negative
	// selects DefaultMaxLookahead.
	MaxLookahead int
}

// NewScanner wires a fetcher to an event log.
func NewScanner(fetcher AvailabilityFetcher, events monitorLog, cfg ScannerConfig, logger zerolog.Logger) *Scanner {
	if cfg.MaxLookahead <= 0 {
		cfg.MaxLookahead = DefaultMaxLookahead
	}
	return &Scanner{
		fetcher:      fetcher,
		events:       events,
		maxOpen:      cfg.MaxOpen,
		maxLookahead: cfg.MaxLookahead,
		now:          time.Now,
		loc:          monitor.DefaultLocation(),
		logger:       logger,
	}
}

// WithClock pins the scanner's notion of "today". Tests use this.
func (s *Scanner) WithClock(now func() time.Time, loc *time.Location) *Scanner {
	s.now = now
	s.loc = loc
	return s
}

// Run scans forward from today, recording each day's open count into the
// event log. Days whose query fails or has no data are skipped: not
// recorded, and not counted toward the stopping streak. The scan ends
// cleanly after two consecutive fully-open days; it errors if the
// lookahead bound is exhausted first.
func (s *Scanner) Run() error {
	start := s.now().In(s.loc)
	year, month, day := start.Year(), int(start.Month()), start.Day()

	fullyOpen := 0
	for scanned := 0; scanned < s.maxLookahead; scanned++ {
		avail, err := s.fetcher.FetchAvailability(year, month, day)
		switch {
		case err != nil:
			s.logger.Warn().
				Err(err).
				Str("date", monitor.DateKey(year, month, day)).
				Msg("availability query failed, skipping day")
		case avail == nil:
			s.logger.Debug().
				Str("date", monitor.DateKey(year, month, day)).
				Msg("no availability data, skipping day")
		default:
			s.events.Add(year, month, day, monitor.Count(avail.Open), true)
			if avail.Open == s.maxOpen {
				fullyOpen++
				if fullyOpen >= fullyOpenStreakToStop {
					s.logger.Info().
						Str("date", monitor.DateKey(year, month, day)).
						Int("days_scanned", scanned+1).
						Msg("reached consecutive fully-open days, stopping scan")
					return nil
				}
			} else {
				fullyOpen = 0
			}
		}

		ny, nm, nd, ok := monitor.NextDay(year, month, day)
		if !ok {
			return fmt.Errorf("stepping past %s", monitor.DateKey(year, month, day))
		}
		year, month, day = ny, nm, nd
	}

	return fmt.Errorf("no fully-open stretch within %d days", s.maxLookahead)
}
