package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobdesk/internal/flagx"
	"github.com/dmitrijs2005/jobdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout accepts "15s" style strings or integer nanoseconds.
// Secrets such as the Gemini key are not read from JSON.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DatabasePath   *string        `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	Enhancer       string         `json:"enhancer"`
	GeminiModel    string         `json:"gemini_model"`
}

// parseJson overlays Config with the JSON file named by -c/-config. Only
// keys present in the file change the config. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigSourceFlags().JSON
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.Enhancer != "" {
		cfg.Enhancer = jc.Enhancer
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
}
