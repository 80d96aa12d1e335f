package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend base URL
//	-d string   path to the local SQLite database ("" keeps the session in memory)
//	-t int      request timeout in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so that flags owned by
// other components do not fail the parse.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
