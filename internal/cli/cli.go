package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/daily-monitor/internal/config"
	"github.com/pfrederiksen/daily-monitor/internal/monitor"
	"github.com/pfrederiksen/daily-monitor/internal/scraper"
	"github.com/pfrederiksen/daily-monitor/internal/ticketing"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagDataDir string
	flagFormat  string
	flagDate    string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily-monitor",
		Short: "Record one scraped data point per day into an event log",
		Long: `A CLI tool that scrapes a single data point from a remote site and
appends it, timestamped, to a per-day JSON event log. Each invocation
performs one run: fetch, append, save, exit.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for event logs (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newHeadlineCmd())
	cmd.AddCommand(newAvailabilityCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

func newHeadlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headline",
		Short: "Scrape today's front-page headline and record it",
		RunE:  runHeadline,
	}
}

func newAvailabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "availability",
		Short: "Scan upcoming days' open-slot counts and record them",
		RunE:  runAvailability,
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "show [headline|availability]",
		Short:     "Print recorded events from a log",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"headline", "availability"},
		RunE:      runShow,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagDate, "date", "", "Only show one day, e.g. 2024-3-5")
	return cmd
}

// loadConfig reads the config file (if any) and applies flag overrides.
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		conf.Storage.DataDir = flagDataDir
	}
	return conf, nil
}

// setupLogger builds the process logger. --verbose wins over the
// configured level.
func setupLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if flagVerbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// openMonitor ensures the data directory exists and hydrates the event
// log. An unwritable data directory is fatal to the run.
func openMonitor(conf *config.Config, path string, log zerolog.Logger, opts ...monitor.Option) (*monitor.Monitor, error) {
	log.Info().Str("dir", conf.Storage.DataDir).Msg("creating data directory if it does not exist")
	if err := os.MkdirAll(conf.Storage.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", conf.Timezone, err)
	}

	log.Info().Str("file", path).Msg("loading daily event monitor")
	opts = append([]monitor.Option{monitor.WithLocation(loc)}, opts...)
	return monitor.Open(path, opts...), nil
}

// runHeadline is one headline run: fetch, append today, save. A fetch
// failure is logged and the run still exits cleanly without appending.
func runHeadline(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	log := setupLogger(conf.Logger.Level)

	m, err := openMonitor(conf, conf.HeadlinePath(), log)
	if err != nil {
		return err
	}

	log.Info().Msg("starting scrape")
	sc := scraper.New(scraper.Config{
		URL:      conf.Headline.URL,
		Selector: conf.Headline.Selector,
		Timeout:  conf.Headline.Timeout,
	}, log)

	headline, err := sc.FetchHeadline()
	if err != nil {
		log.Error().Err(err).Msg("failed to scrape data point")
		log.Info().Msg("scrape complete")
		return nil
	}

	added := m.AddToday(monitor.Text(headline), true)
	if err := m.Save(""); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}

	log.Info().
		Bool("appended", added).
		Str("file", m.FilePath()).
		Msg("saved daily event monitor")
	log.Info().Msg("scrape complete")
	return nil
}

// runAvailability scans forward from today and records open-slot counts.
// Whatever the scan managed to record is saved even when it ends on the
// lookahead bound.
func runAvailability(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	log := setupLogger(conf.Logger.Level)

	if conf.Availability.BaseURL == "" || conf.Availability.EventID == "" {
		return fmt.Errorf("availability.baseUrl and availability.eventId must be configured")
	}

	// Availability events only carry the time of day; the date is the key.
	m, err := openMonitor(conf, conf.AvailabilityPath(), log, monitor.WithTimeOnlyTimestamps())
	if err != nil {
		return err
	}

	client := ticketing.NewClient(ticketing.Config{
		BaseURL: conf.Availability.BaseURL,
		EventID: conf.Availability.EventID,
		Timeout: conf.Availability.Timeout,
	}, log)

	scan := ticketing.NewScanner(client, m, ticketing.ScannerConfig{
		MaxOpen:      conf.Availability.MaxOpen,
		MaxLookahead: conf.Availability.MaxLookaheadDays,
	}, log)

	log.Info().Str("event_id", conf.Availability.EventID).Msg("starting availability scan")
	scanErr := scan.Run()

	if err := m.Save(""); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}
	log.Info().Str("file", m.FilePath()).Msg("saved daily event monitor")

	if scanErr != nil {
		// Partial results are already on disk; report the truncated scan
		// the same way a failed fetch is reported and exit cleanly.
		log.Error().Err(scanErr).Msg("availability scan ended early")
	}
	return nil
}

// runShow prints recorded events without mutating the log file.
func runShow(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	source := "headline"
	if len(args) == 1 {
		source = args[0]
	}
	path := conf.HeadlinePath()
	if source == "availability" {
		path = conf.AvailabilityPath()
	}

	m := monitor.New()
	ok, err := m.Load(path)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "No events recorded yet at %s\n", path)
		return nil
	}

	days := CollectDays(m.Data(), flagDate)
	return WriteOutput(os.Stdout, days, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
