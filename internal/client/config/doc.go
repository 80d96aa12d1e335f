// Package config loads runtime configuration for the jobdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with gaps filled from a .env file selected by
//     -e/-env or found in the working directory.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	JOBDESK_API_URL, JOBDESK_DB_PATH, JOBDESK_TIMEOUT ("15s"),
//	JOBDESK_LOG_LEVEL, JOBDESK_LOG_FORMAT, JOBDESK_ENHANCER ("remote" | "llm"),
//	JOBDESK_GEMINI_MODEL, GEMINI_API_KEY
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://jobs.example.com",
//	  "database_path": "/home/me/.jobdesk.db",
//	  "request_timeout": "20s",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "enhancer": "llm",
//	  "gemini_model": "gemini-2.5-flash"
//	}
package config
