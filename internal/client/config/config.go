package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

const (
	EnhancerRemote = "remote"
	EnhancerLLM    = "llm"
)

// Config holds runtime settings for the jobdesk client.
//
// DatabasePath may be empty, in which case the session lives in memory
// only and is lost on exit.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	Enhancer       string
	GeminiAPIKey   string
	GeminiModel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "jobdesk.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.Enhancer = EnhancerRemote
	c.GeminiModel = "gemini-2.5-flash"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), JSON and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.APIBaseURL = NormalizeBaseURL(cfg.APIBaseURL)
	return cfg
}

// NormalizeBaseURL trims spaces and trailing slashes and assumes http://
// when no scheme is given, so "localhost:8000" is accepted.
func NormalizeBaseURL(raw string) string {
	s := strings.TrimRight(strings.TrimSpace(raw), "/")
	if s == "" {
		return s
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	return s
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	switch c.Enhancer {
	case EnhancerRemote:
	case EnhancerLLM:
		if c.GeminiAPIKey == "" {
			return errors.New("enhancer \"llm\" requires GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown enhancer %q (want %q or %q)", c.Enhancer, EnhancerRemote, EnhancerLLM)
	}
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}.Validate()
}
