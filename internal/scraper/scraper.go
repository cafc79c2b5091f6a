package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	DefaultURL      = "https://www.thedp.com"
	DefaultSelector = "a.frontpage-link"
	UserAgent       = "daily-monitor/1.0 (github.com/pfrederiksen/daily-monitor)"
	DefaultTimeout  = 30 * time.Second
)

// Config holds the knobs for a headline scrape.
type Config struct {
	URL      string
	Selector string
	Timeout  time.Duration
}

// Scraper fetches a front page and extracts the main headline
type Scraper struct {
	client   *http.Client
	url      string
	selector string
	log      zerolog.Logger
}

// New creates a Scraper from cfg, filling in defaults for empty fields
func New(cfg Config, log zerolog.Logger) *Scraper {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:      cfg.URL,
		selector: cfg.Selector,
		log:      log,
	}
}

// FetchHeadline fetches the front page and returns the text of the first
// element matching the configured selector. A page without the element
// yields "" with no error; the caller records the empty observation.
func (s *Scraper) FetchHeadline() (string, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	s.log.Info().
		Str("url", s.url).
		Int("status", resp.StatusCode).
		Msg("fetched front page")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	headline, err := s.parseHeadline(resp.Body)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("headline", headline).Msg("extracted data point")
	return headline, nil
}

// parseHeadline extracts the headline text from HTML
func (s *Scraper) parseHeadline(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find(s.selector).First()
	if sel.Length() == 0 {
		s.log.Warn().Str("selector", s.selector).Msg("selector matched nothing")
		return "", nil
	}

	return strings.TrimSpace(sel.Text()), nil
}
