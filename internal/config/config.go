// Package config loads runtime settings from the environment. A .env file in
// the working directory, when present, is loaded first; variables already set
// in the environment take precedence over it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API server and the Lambda functions need to
// start.
type Config struct {
	Port int
	Env  string

	// Server timeouts for the HTTP service. ShutdownTimeout bounds how long
	// in-flight requests may run after SIGINT or SIGTERM.
	Server struct {
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		ShutdownTimeout time.Duration
	}

	DB struct {
		Host         string
		Port         string
		User         string
		Pass         string
		Name         string
		SSLMode      string
		DSN          string // overrides the fields above when set
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  time.Duration
	}

	Limiter struct {
		Enabled bool
		RPS     float64
		Burst   int
	}
}

// Load reads the configuration. Unparseable numeric values are reported as
// errors rather than silently replaced with defaults.
func Load() (Config, error) {
	// A missing .env file is the normal case in deployed environments.
	_ = godotenv.Load()

	var (
		cfg Config
		p   parser
	)

	cfg.Port = p.int("PORT", 4000)
	cfg.Env = getenv("APP_ENV", "development")

	cfg.Server.ReadTimeout = p.duration("SERVER_READ_TIMEOUT", 5*time.Second)
	cfg.Server.WriteTimeout = p.duration("SERVER_WRITE_TIMEOUT", 10*time.Second)
	cfg.Server.IdleTimeout = p.duration("SERVER_IDLE_TIMEOUT", time.Minute)
	cfg.Server.ShutdownTimeout = p.duration("SERVER_SHUTDOWN_TIMEOUT", 20*time.Second)

	cfg.DB.Host = getenv("DB_HOST", "localhost")
	cfg.DB.Port = getenv("DB_PORT", "5432")
	cfg.DB.User = getenv("DB_USER", "postgres")
	cfg.DB.Pass = getenv("DB_PASS", "")
	cfg.DB.Name = getenv("DB_NAME", "books")
	cfg.DB.SSLMode = getenv("DB_SSLMODE", "disable")
	cfg.DB.DSN = os.Getenv("DB_DSN")
	cfg.DB.MaxOpenConns = p.int("DB_MAX_OPEN_CONNS", 25)
	cfg.DB.MaxIdleConns = p.int("DB_MAX_IDLE_CONNS", 25)
	cfg.DB.MaxIdleTime = p.duration("DB_MAX_IDLE_TIME", 15*time.Minute)

	cfg.Limiter.Enabled = p.bool("LIMITER_ENABLED", true)
	cfg.Limiter.RPS = p.float("LIMITER_RPS", 2)
	cfg.Limiter.Burst = p.int("LIMITER_BURST", 4)

	return cfg, p.err
}

// DSN returns the lib/pq connection string for the configured database.
func (c Config) DSN() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Pass),
		Host:     c.DB.Host + ":" + c.DB.Port,
		Path:     "/" + c.DB.Name,
		RawQuery: url.Values{"sslmode": {c.DB.SSLMode}}.Encode(),
	}
	return u.String()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parser remembers the first conversion failure so Load can report it once.
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("config: invalid %s %q: %w", key, value, err)
	}
}

func (p *parser) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return i
}

func (p *parser) float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return f
}

func (p *parser) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}
