// Package config loads service configuration from the environment.
// A .env file is honored for local development; real deployments set
// variables directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded once at startup and
// treated as immutable for the process lifetime.
type Config struct {
	Service   ServiceConfig
	Logging   LoggingConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig

	ShutdownTimeoutSeconds     int
	ReadinessDrainDelaySeconds int
}

type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

type LoggingConfig struct {
	Level string
}

type DatabaseConfig struct {
	URL string
}

// AuthConfig configures the session token codec, the session cookie
// and the superuser bootstrap identity.
type AuthConfig struct {
	// TokenSecret signs session tokens. Empty is a startup error,
	// never a silent per-request failure.
	TokenSecret string

	// SessionTTL is the validity window for issued sessions and the
	// max-age of the session cookie.
	SessionTTL time.Duration

	// CookieSecure should be true everywhere except local development.
	CookieSecure bool

	// SuperuserEmail/SuperuserPassword form the single bootstrap
	// admin identity not backed by a user row.
	SuperuserEmail    string
	SuperuserPassword string
}

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	From     string
	Username string
	Password string
}

type RateLimitConfig struct {
	// LoginAttempts per LoginWindow per client IP.
	LoginAttempts int
	LoginWindow   time.Duration
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

// Load reads configuration from the environment. It does not validate;
// call Validate before using the result.
func Load() *Config {
	// Best-effort; absence of a .env file is normal outside dev.
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "tawzeef"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("SERVICE_ENV", "development"),
			Port:    getEnv("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			TokenSecret:       os.Getenv("SESSION_SECRET"),
			SessionTTL:        getEnvDuration("SESSION_TTL", 7*24*time.Hour),
			CookieSecure:      getEnvBool("COOKIE_SECURE", getEnv("SERVICE_ENV", "development") != "development"),
			SuperuserEmail:    os.Getenv("SUPERUSER_EMAIL"),
			SuperuserPassword: os.Getenv("SUPERUSER_PASSWORD"),
		},
		Mail: MailConfig{
			SMTPHost: os.Getenv("SMTP_HOST"),
			SMTPPort: getEnv("SMTP_PORT", "587"),
			From:     os.Getenv("SMTP_FROM"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts: getEnvInt("LOGIN_RATE_LIMIT", 10),
			LoginWindow:   getEnvDuration("LOGIN_RATE_WINDOW", time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:    getEnvBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("TRACING_ENDPOINT", "localhost:4318"),
			SampleRate: getEnvFloat("TRACING_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getEnvBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PROFILING_ENDPOINT", "http://localhost:4040"),
		},
		ShutdownTimeoutSeconds:     getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 15),
		ReadinessDrainDelaySeconds: getEnvInt("READINESS_DRAIN_DELAY_SECONDS", 0),
	}
}

// Validate fails fast on configuration the service cannot run without.
// A missing signing secret must abort startup rather than surface later
// as per-request authentication failures.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Auth.TokenSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if (c.Auth.SuperuserEmail == "") != (c.Auth.SuperuserPassword == "") {
		errs = append(errs, errors.New("SUPERUSER_EMAIL and SUPERUSER_PASSWORD must be set together"))
	}
	if c.RateLimit.LoginAttempts <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT must be positive"))
	}

	return errors.Join(errs...)
}

// GetShutdownTimeoutDuration returns the HTTP shutdown timeout.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// GetReadinessDrainDelayDuration returns the delay between failing
// readiness and starting HTTP shutdown.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return time.Duration(c.ReadinessDrainDelaySeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// String implements fmt.Stringer without leaking secrets.
func (c *Config) String() string {
	return fmt.Sprintf("service=%s env=%s port=%s", c.Service.Name, c.Service.Env, c.Service.Port)
}
