package monitor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// ErrNoPath is returned by Load and Save when no file path has ever been
// supplied. This is a programming error, not a runtime condition.
var ErrNoPath = errors.New("no file path available")

// Event is one observation: a rendered local-time timestamp and the value
// seen at that moment. Its JSON form is the 2-element array
// ["2024-03-05 09:41AM", value].
type Event struct {
	Timestamp string
	Value     Value
}

// MarshalJSON encodes the event as a [timestamp, value] pair.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.Timestamp, e.Value})
}

// UnmarshalJSON decodes a [timestamp, value] pair.
func (e *Event) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("parsing event: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("event must be a [timestamp, value] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Timestamp); err != nil {
		return fmt.Errorf("parsing event timestamp: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Value); err != nil {
		return fmt.Errorf("parsing event value: %w", err)
	}
	return nil
}

// Monitor is an append-only log of daily events, keyed by calendar date
// and persisted as pretty-printed JSON. The zero value is not usable;
// construct with New or Open.
type Monitor struct {
	data     map[string][]Event
	path     string
	now      func() time.Time
	loc      *time.Location
	timeOnly bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock injects the time source used for timestamps and "today".
// Tests use this to pin the clock.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// WithLocation overrides the timezone used to resolve dates and render
// timestamps.
func WithLocation(loc *time.Location) Option {
	return func(m *Monitor) {
		m.loc = loc
	}
}

// WithTimeOnlyTimestamps drops the date prefix from rendered timestamps,
// the form used by availability logs where the date is already the key.
func WithTimeOnlyTimestamps() Option {
	return func(m *Monitor) {
		m.timeOnly = true
	}
}

// WithData seeds the monitor with an initial mapping. The mapping is
// deep-copied so the caller's copy never aliases internal state.
func WithData(data map[string][]Event) Option {
	return func(m *Monitor) {
		m.data = copyData(data)
	}
}

// New creates an empty Monitor.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		data: make(map[string][]Event),
		now:  time.Now,
		loc:  DefaultLocation(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a Monitor bound to path and hydrates it from the file if
// one is readable. A missing or corrupt file leaves the monitor empty;
// the path is remembered for later saves either way.
func Open(path string, opts ...Option) *Monitor {
	m := New(opts...)
	// A failed load means this is the first run; start empty.
	m.Load(path)
	return m
}

// DateKey builds the string used to index the log for a calendar day.
// Components are not zero-padded: March 5 2024 keys as "2024-3-5".
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

// lookupDay returns the live event slice for a day, inserting an empty one
// if the day has not been seen. Callers outside Add must not leak the
// returned slice.
func (m *Monitor) lookupDay(year, month, day int) []Event {
	key := DateKey(year, month, day)
	if _, ok := m.data[key]; !ok {
		m.data[key] = []Event{}
	}
	return m.data[key]
}

// Get returns the events recorded for a day, oldest first. A day with no
// events yields an empty slice, and the (now present) empty day is kept in
// the mapping so it appears in subsequent saves. The returned slice is a
// copy; mutating it does not affect the monitor.
func (m *Monitor) Get(year, month, day int) []Event {
	events := m.lookupDay(year, month, day)
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// Add appends (now, value) to the day's events. When ignoreRepeat is true
// and the day's most recent value equals value, nothing is appended.
// Reports whether an event was actually added.
func (m *Monitor) Add(year, month, day int, value Value, ignoreRepeat bool) bool {
	events := m.lookupDay(year, month, day)
	if ignoreRepeat && len(events) > 0 && events[len(events)-1].Value.Equal(value) {
		return false
	}

	key := DateKey(year, month, day)
	m.data[key] = append(events, Event{
		Timestamp: Timestamp(m.now().In(m.loc), !m.timeOnly),
		Value:     value,
	})
	return true
}

// AddToday appends value under today's date as observed in the monitor's
// timezone.
func (m *Monitor) AddToday(value Value, ignoreRepeat bool) bool {
	now := m.now().In(m.loc)
	return m.Add(now.Year(), int(now.Month()), now.Day(), value, ignoreRepeat)
}

// Load replaces the in-memory mapping with the contents of path, or of the
// last-known path when path is empty. It returns ErrNoPath when neither is
// available. A missing or unparseable file is a recoverable condition:
// Load reports false, existing state is untouched, and the path is still
// remembered for later saves.
func (m *Monitor) Load(path string) (bool, error) {
	if path == "" {
		path = m.path
	}
	if path == "" {
		return false, ErrNoPath
	}
	m.path = path

	raw, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}

	var data map[string][]Event
	if err := json.Unmarshal(raw, &data); err != nil {
		return false, nil
	}
	if data == nil {
		data = make(map[string][]Event)
	}
	m.data = data
	return true, nil
}

// Save writes the full mapping to path (or the last-known path) as
// 2-space-indented JSON, creating parent directories as needed and
// overwriting any existing file. The path is remembered for later calls.
func (m *Monitor) Save(path string) error {
	if path == "" {
		path = m.path
	}
	if path == "" {
		return ErrNoPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}

	m.path = path
	return nil
}

// Data returns a deep copy of the full date-to-events mapping.
func (m *Monitor) Data() map[string][]Event {
	return copyData(m.data)
}

// FilePath returns the last path used by Load or Save, or "" if the
// monitor has never been bound to a file.
func (m *Monitor) FilePath() string {
	return m.path
}

func copyData(data map[string][]Event) map[string][]Event {
	out := make(map[string][]Event, len(data))
	for key, events := range data {
		copied := make([]Event, len(events))
		copy(copied, events)
		out[key] = copied
	}
	return out
}
