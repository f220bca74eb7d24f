package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		PaymentOverdueInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Invoicing struct {
		BaseURL    string
		APIKey     string
		DefaultDue time.Duration
	}

	OrderNumber struct {
		BaseURL string
	}

	Geocoder struct {
		BaseURL string
	}

	Dispatch struct {
		DriverRoster        []string
		HomeYardName        string
		ReleaseOnCompletion bool
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		Database    Database
		Invoicing   Invoicing
		OrderNumber OrderNumber
		Geocoder    Geocoder
		Dispatch    Dispatch
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	paymentOverdueInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_OVERDUE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	invoicingDefaultDue, err := osGetEnvDuration("INVOICING_DEFAULT_DUE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	releaseOnCompletion, err := osGetBoolDefault("RELEASE_DUMPSTER_ON_COMPLETION", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PaymentOverdueInterval: paymentOverdueInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Invoicing: Invoicing{
			BaseURL:    os.Getenv("INVOICING_BASE_URL"),
			APIKey:     os.Getenv("INVOICING_API_KEY"),
			DefaultDue: invoicingDefaultDue,
		},
		OrderNumber: OrderNumber{
			BaseURL: os.Getenv("ORDER_NUMBER_BASE_URL"),
		},
		Geocoder: Geocoder{
			BaseURL: os.Getenv("GEOCODER_BASE_URL"),
		},
		Dispatch: Dispatch{
			DriverRoster:        osGetList("DRIVER_ROSTER"),
			HomeYardName:        os.Getenv("DUMPSTER_HOME_YARD_NAME"),
			ReleaseOnCompletion: releaseOnCompletion,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.PaymentOverdueInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_OVERDUE_INTERVAL is required")
	}

	if cfg.Invoicing.BaseURL == "" {
		return errors.New("INVOICING_BASE_URL is required")
	}
	if cfg.Invoicing.APIKey == "" {
		return errors.New("INVOICING_API_KEY is required")
	}
	if cfg.Invoicing.DefaultDue == time.Duration(0) {
		return errors.New("INVOICING_DEFAULT_DUE is required")
	}

	if cfg.OrderNumber.BaseURL == "" {
		return errors.New("ORDER_NUMBER_BASE_URL is required")
	}
	if cfg.Geocoder.BaseURL == "" {
		return errors.New("GEOCODER_BASE_URL is required")
	}

	if len(cfg.Dispatch.DriverRoster) == 0 {
		return errors.New("DRIVER_ROSTER is required")
	}
	if cfg.Dispatch.HomeYardName == "" {
		return errors.New("DUMPSTER_HOME_YARD_NAME is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBoolDefault(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList splits a comma-separated env value, dropping empty items.
func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
