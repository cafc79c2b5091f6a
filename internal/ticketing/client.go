package ticketing

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/pfrederiksen/daily-monitor/internal/monitor"
)

const (
	UserAgent      = "daily-monitor/1.0 (github.com/pfrederiksen/daily-monitor)"
	DefaultTimeout = 15 * time.Second
)

// Availability describes one day's booking state for an event. It is a
// per-request DTO; only the Open count is ever persisted.
type Availability struct {
	EventID string `json:"event_id"`
	Open    int    `json:"open"`
	Date    string `json:"date"`
}

// Config holds the knobs for the availability client.
type Config struct {
	BaseURL string
	EventID string
	Timeout time.Duration
}

// Client queries a ticketing site's availability endpoint
type Client struct {
	baseURL    string
	eventID    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates an availability client for one event
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		eventID: cfg.EventID,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// FetchAvailability returns the open-slot count for the event on the given
// day. A day the site has no inventory for (404 or an empty record) yields
// (nil, nil): no data, not a failure.
func (c *Client) FetchAvailability(year, month, day int) (*Availability, error) {
	params := url.Values{}
	params.Add("date", monitor.DateKey(year, month, day))

	reqURL := fmt.Sprintf("%s/events/%s/availability?%s", c.baseURL, c.eventID, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var avail Availability
	if err := json.NewDecoder(resp.Body).Decode(&avail); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if avail.EventID == "" {
		// The endpoint answered but carries no inventory for this day.
		return nil, nil
	}

	c.log.Debug().
		Str("event_id", avail.EventID).
		Str("date", avail.Date).
		Int("open", avail.Open).
		Msg("fetched availability")

	return &avail, nil
}
