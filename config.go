package bossa

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvNIK        = "BOSSA_NIK"
	EnvPIN        = "BOSSA_PIN"
	EnvPortalURL  = "BOSSA_PORTAL_URL"
	EnvDataURL    = "BOSSA_DATA_URL"
	EnvArchiveURL = "BOSSA_ARCHIVE_URL"
	EnvTimeout    = "BOSSA_TIMEOUT"
)

// DefaultTimeout bounds every HTTP request of a session.
const DefaultTimeout = 30 * time.Second

// Credentials identify the account. They are kept in memory only.
type Credentials struct {
	NIK string // account identifier
	PIN string
}

// String hides the PIN.
func (c Credentials) String() string { return fmt.Sprintf("NIK=%s PIN=***", c.NIK) }

// Endpoints are the base URLs of the three hosts involved.
type Endpoints struct {
	Portal  string // login, desktop, logout
	Data    string // quote data and watchlist
	Archive string // historic intraday archives
}

// DefaultEndpoints returns the production hosts.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Portal:  "https://www.bossa.pl",
		Data:    "http://moja.nova.bossa.pl",
		Archive: "http://bossa.pl",
	}
}

// Config is everything a session needs.
type Config struct {
	Credentials Credentials
	Endpoints   Endpoints
	Timeout     time.Duration
}

// DefaultConfig returns a config with production endpoints and no credentials.
func DefaultConfig() Config {
	return Config{
		Endpoints: DefaultEndpoints(),
		Timeout:   DefaultTimeout,
	}
}

// Validate reports every missing field.
func (c Config) Validate() error {
	var errs error
	if c.Credentials.NIK == "" {
		errs = errors.Join(errs, fmt.Errorf("missing account identifier (%s)", EnvNIK))
	}
	if c.Credentials.PIN == "" {
		errs = errors.Join(errs, fmt.Errorf("missing PIN (%s)", EnvPIN))
	}
	for name, v := range map[string]string{"portal": c.Endpoints.Portal, "data": c.Endpoints.Data, "archive": c.Endpoints.Archive} {
		if v == "" {
			errs = errors.Join(errs, fmt.Errorf("missing %s endpoint", name))
		}
	}
	if c.Timeout <= 0 {
		errs = errors.Join(errs, fmt.Errorf("invalid timeout %v", c.Timeout))
	}
	return errs
}

// LoadConfig returns the default config overridden by the environment.
//
// If envFile is not empty it is loaded first, variables already set in the
// environment win. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot load env file %q: %w", envFile, err)
		}
	}
	cfg := DefaultConfig()
	cfg.Credentials.NIK = os.Getenv(EnvNIK)
	cfg.Credentials.PIN = os.Getenv(EnvPIN)
	if v := os.Getenv(EnvPortalURL); v != "" {
		cfg.Endpoints.Portal = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv(EnvDataURL); v != "" {
		cfg.Endpoints.Data = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv(EnvArchiveURL); v != "" {
		cfg.Endpoints.Archive = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
