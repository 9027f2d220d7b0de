package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Environment variables read by FromEnv.
const (
	EnvDatabaseURL          = "DATABASE_URL"
	EnvMigrationsPath       = "DATABASE_MIGRATIONS_PATH"
	EnvStorage              = "STORAGE"
	EnvHTTPPort             = "HTTP_PORT"
	EnvRequestTimeout       = "HTTP_REQUEST_TIMEOUT"
	EnvNotificationsEnabled = "NOTIFICATIONS_ENABLED"
	EnvNotificationsBaseURL = "NOTIFICATIONS_BASE_URL"
	EnvNotificationsTimeout = "NOTIFICATIONS_TIMEOUT"
	EnvOverdueDays          = "OVERDUE_DAYS"
	EnvOverdueScanInterval  = "OVERDUE_SCAN_INTERVAL"
	EnvLogLevel             = "LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	DatabaseURL          string
	MigrationsPath       string
	Storage              string
	HTTPPort             int
	RequestTimeout       time.Duration
	NotificationsEnabled bool
	NotificationsBaseURL string
	NotificationsTimeout time.Duration
	OverdueDays          int
	OverdueScanInterval  time.Duration
	LogLevel             string
}

func Default() Config {
	return Config{
		MigrationsPath:       "migrations",
		Storage:              StoragePostgres,
		HTTPPort:             8080,
		RequestTimeout:       5 * time.Second,
		NotificationsBaseURL: "https://ntfy.sh/library_overdue",
		NotificationsTimeout: 5 * time.Second,
		OverdueDays:          4,
		OverdueScanInterval:  24 * time.Hour,
		LogLevel:             "info",
	}
}

/* Overrides the defaults with every variable lookup finds. Durations must carry a unit suffix, like "5s". */
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	c := Default()

	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str(EnvDatabaseURL, &c.DatabaseURL)
	str(EnvMigrationsPath, &c.MigrationsPath)
	str(EnvStorage, &c.Storage)
	num(EnvHTTPPort, &c.HTTPPort)
	dur(EnvRequestTimeout, &c.RequestTimeout)
	flag(EnvNotificationsEnabled, &c.NotificationsEnabled)
	str(EnvNotificationsBaseURL, &c.NotificationsBaseURL)
	dur(EnvNotificationsTimeout, &c.NotificationsTimeout)
	num(EnvOverdueDays, &c.OverdueDays)
	dur(EnvOverdueScanInterval, &c.OverdueScanInterval)
	str(EnvLogLevel, &c.LogLevel)

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("reading environment: %w", errors.Join(errs...))
	}
	return c, nil
}

/* Registers a flag for every setting, using the current values as defaults. */
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DatabaseURL, "database-url", c.DatabaseURL, "postgres connection string")
	fs.StringVar(&c.MigrationsPath, "migrations-path", c.MigrationsPath, "directory holding the sql migrations")
	fs.StringVar(&c.Storage, "storage", c.Storage, "storage backend: postgres or memory")
	fs.IntVar(&c.HTTPPort, "http-port", c.HTTPPort, "port the http server listens on")
	fs.DurationVar(&c.RequestTimeout, "http-request-timeout", c.RequestTimeout, "deadline of every http request")
	fs.BoolVar(&c.NotificationsEnabled, "notifications-enabled", c.NotificationsEnabled, "send overdue notifications")
	fs.StringVar(&c.NotificationsBaseURL, "notifications-base-url", c.NotificationsBaseURL, "ntfy topic the notifications are posted to")
	fs.DurationVar(&c.NotificationsTimeout, "notifications-timeout", c.NotificationsTimeout, "deadline of every notification")
	fs.IntVar(&c.OverdueDays, "overdue-days", c.OverdueDays, "days a loan may stay outstanding before it is overdue")
	fs.DurationVar(&c.OverdueScanInterval, "overdue-scan-interval", c.OverdueScanInterval, "time between overdue scans")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

func (c Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("%s is required with %s storage", EnvDatabaseURL, StoragePostgres))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http port %d out of range", c.HTTPPort))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("http request timeout must be positive"))
	}
	if c.NotificationsTimeout <= 0 {
		errs = append(errs, errors.New("notifications timeout must be positive"))
	}
	if c.OverdueDays < 0 {
		errs = append(errs, errors.New("overdue days can't be negative"))
	}
	if c.OverdueScanInterval <= 0 {
		errs = append(errs, errors.New("overdue scan interval must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
