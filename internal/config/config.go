// Package config loads daily-monitor settings from an optional YAML file
// with environment-variable overrides. Every knob has a default, so the
// binary runs with no configuration present, matching its original
// zero-argument invocation.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pfrederiksen/daily-monitor/internal/monitor"
	"github.com/pfrederiksen/daily-monitor/internal/scraper"
	"github.com/pfrederiksen/daily-monitor/internal/ticketing"
)

// LoggerConfig controls log verbosity.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig locates the event-log files.
type StorageConfig struct {
	DataDir      string `mapstructure:"dataDir"`
	HeadlineFile string `mapstructure:"headlineFile"`
}

// HeadlineConfig points the scraper at a front page.
type HeadlineConfig struct {
	URL      string        `mapstructure:"url"`
	Selector string        `mapstructure:"selector"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// AvailabilityConfig points the scanner at a ticketing endpoint.
type AvailabilityConfig struct {
	BaseURL          string        `mapstructure:"baseUrl"`
	EventID          string        `mapstructure:"eventId"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxOpen          int           `mapstructure:"maxOpen"`
	MaxLookaheadDays int           `mapstructure:"maxLookaheadDays"`
}

// Config is the full daily-monitor configuration.
type Config struct {
	Timezone     string             `mapstructure:"timezone"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Headline     HeadlineConfig     `mapstructure:"headline"`
	Availability AvailabilityConfig `mapstructure:"availability"`
}

// Load reads configuration from path (YAML) when given, otherwise serves
// defaults. DAILY_MONITOR_* environment variables override either source.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timezone", monitor.DefaultTimezone)
	v.SetDefault("logger.level", "info")
	v.SetDefault("storage.dataDir", "data")
	v.SetDefault("storage.headlineFile", "daily_pennsylvanian_headlines.json")
	v.SetDefault("headline.url", scraper.DefaultURL)
	v.SetDefault("headline.selector", scraper.DefaultSelector)
	v.SetDefault("headline.timeout", scraper.DefaultTimeout)
	v.SetDefault("availability.baseUrl", "")
	v.SetDefault("availability.eventId", "")
	v.SetDefault("availability.timeout", ticketing.DefaultTimeout)
	v.SetDefault("availability.maxOpen", 50)
	v.SetDefault("availability.maxLookaheadDays", ticketing.DefaultMaxLookahead)

	v.BindEnv("logger.level", "DAILY_MONITOR_LOG_LEVEL")
	v.BindEnv("timezone", "DAILY_MONITOR_TIMEZONE")
	v.BindEnv("storage.dataDir", "DAILY_MONITOR_DATA_DIR")
	v.BindEnv("headline.url", "DAILY_MONITOR_HEADLINE_URL")
	v.BindEnv("headline.selector", "DAILY_MONITOR_HEADLINE_SELECTOR")
	v.BindEnv("availability.baseUrl", "DAILY_MONITOR_AVAILABILITY_URL")
	v.BindEnv("availability.eventId", "DAILY_MONITOR_AVAILABILITY_EVENT")

	if path != "" {
		filename := filepath.Base(path)
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return &conf, nil
}

// HeadlinePath is the JSON file the headline log lives in.
func (c *Config) HeadlinePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.HeadlineFile)
}

// AvailabilityPath is the JSON file the availability log for the
// configured event lives in.
func (c *Config) AvailabilityPath() string {
	return filepath.Join(c.Storage.DataDir, fmt.Sprintf("availability_%s.json", c.Availability.EventID))
}
