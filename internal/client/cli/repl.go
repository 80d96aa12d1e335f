package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type handler func(ctx context.Context, args []string) error

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	notify(ctx context.Context, err error)

	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	AdminLogin(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error

	ShowCV(ctx context.Context, args []string) error
	Contact(ctx context.Context, args []string) error
	Skills(ctx context.Context, args []string) error
	Summary(ctx context.Context, args []string) error
	Enhance(ctx context.Context, args []string) error
	Accept(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error

	Recommendations(ctx context.Context, args []string) error
	Apply(ctx context.Context, args []string) error

	Companies(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Enrich(ctx context.Context, args []string) error
}

type access int

const (
	public access = iota
	protected
	adminOnly
)

type command struct {
	access access
	run    handler
}

func commands(a execIface) map[string]command {
	return map[string]command{
		"signup":     {public, a.Signup},
		"login":      {public, a.Login},
		"adminlogin": {public, a.AdminLogin},

		"logout": {protected, a.Logout},
		"whoami": {protected, a.WhoAmI},

		"cv":      {protected, a.ShowCV},
		"contact": {protected, a.Contact},
		"skills":  {protected, a.Skills},
		"summary": {protected, a.Summary},
		"enhance": {protected, a.Enhance},
		"accept":  {protected, a.Accept},
		"reject":  {protected, a.Reject},
		"save":    {protected, a.Save},
		"recs":    {protected, a.Recommendations},
		"apply":   {protected, a.Apply},

		"companies": {adminOnly, a.Companies},
		"select":    {adminOnly, a.Select},
		"enrich":    {adminOnly, a.Enrich},
	}
}

const (
	helpPublic = "Available commands: signup, login, adminlogin, exit"
	helpUser   = "Available commands: whoami, cv [reload], contact [set], skills [add|rm], " +
		"summary [set], enhance, accept, reject, save [section], recs, apply, logout, exit"
	helpAdmin = "Available commands: whoami, companies, select <id>, enrich, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the jobdesk CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to the matching handler. Commands are gated
// by access level: public ones work signed out, protected ones need a
// session and admin ones need an administrator session. Handler errors are
// reported through notify and never stop the loop. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// The reader is shared with the interactive prompts so buffered input is
// never lost between them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	table := commands(a)
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("jd> %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := strings.ToLower(parts[0]), parts[1:]

		switch name {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(helpPublic)
			case a.isAdmin():
				printlnFn(helpAdmin)
			default:
				printlnFn(helpUser)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := table[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		switch {
		case cmd.access >= protected && !a.isLoggedIn():
			a.notify(ctx, common.ErrNotAuthenticated)
			continue
		case cmd.access == adminOnly && !a.isAdmin():
			a.notify(ctx, common.ErrNotAdmin)
			continue
		}
		a.notify(ctx, cmd.run(ctx, args))
	}
}
