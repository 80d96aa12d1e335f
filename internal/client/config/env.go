package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/jobdesk/internal/flagx"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL      = "JOBDESK_API_URL"
	EnvDBPath      = "JOBDESK_DB_PATH"
	EnvTimeout     = "JOBDESK_TIMEOUT"
	EnvLogLevel    = "JOBDESK_LOG_LEVEL"
	EnvLogFormat   = "JOBDESK_LOG_FORMAT"
	EnvEnhancer    = "JOBDESK_ENHANCER"
	EnvGeminiKey   = "GEMINI_API_KEY"
	EnvGeminiModel = "JOBDESK_GEMINI_MODEL"
)

const defaultDotEnv = ".env"

type lookupFunc func(key string) (string, bool)

// parseEnv overlays Config with environment variables. Values from a .env
// file (-e/-env, or ./.env when present) fill in variables that are not
// set in the real environment. Panics on an unreadable .env file or a
// malformed value.
func parseEnv(cfg *Config) {
	path := flagx.ConfigSourceFlags().Env
	if path == "" {
		if _, err := os.Stat(defaultDotEnv); err == nil {
			path = defaultDotEnv
		}
	}

	fileVals := map[string]string{}
	if path != "" {
		vals, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		if vals != nil {
			fileVals = vals
		}
	}

	applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

func applyEnv(cfg *Config, lookup lookupFunc) {
	cfg.APIBaseURL = getEnv(lookup, EnvAPIURL, cfg.APIBaseURL)
	cfg.LogLevel = getEnv(lookup, EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(lookup, EnvLogFormat, cfg.LogFormat)
	cfg.Enhancer = getEnv(lookup, EnvEnhancer, cfg.Enhancer)
	cfg.GeminiAPIKey = getEnv(lookup, EnvGeminiKey, cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv(lookup, EnvGeminiModel, cfg.GeminiModel)

	// An explicitly empty path selects the in-memory store.
	if v, ok := lookup(EnvDBPath); ok {
		cfg.DatabasePath = v
	}

	if v := getEnv(lookup, EnvTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(lookup lookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}
