// Package flagx isolates the handful of flags a component understands from
// the full command line, so several flag sets can coexist over os.Args.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A value is taken from
// the following argument only when it does not itself start with "-".
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// SourceFiles holds the optional configuration file paths given on the
// command line.
type SourceFiles struct {
	JSON string // -c / -config
	Env  string // -e / -env
}

// ConfigSourceFlags extracts -c/-config and -e/-env from os.Args, ignoring
// everything else. Missing flags yield empty paths.
func ConfigSourceFlags() SourceFiles {
	var src SourceFiles

	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "-e", "-env"})

	fs := flag.NewFlagSet("sources", flag.ContinueOnError)
	fs.StringVar(&src.JSON, "config", "", "path to JSON config file")
	fs.StringVar(&src.JSON, "c", "", "path to JSON config file (short)")
	fs.StringVar(&src.Env, "env", "", "path to .env file")
	fs.StringVar(&src.Env, "e", "", "path to .env file (short)")
	_ = fs.Parse(args)

	return src
}
