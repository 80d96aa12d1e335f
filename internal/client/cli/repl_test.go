package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobdesk/internal/common"
)

// fakeExec records which handlers ran and with what arguments.
type fakeExec struct {
	loggedIn bool
	admin    bool
	calls    []string
	args     [][]string
	notified []error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) notify(_ context.Context, err error) {
	if err != nil {
		f.notified = append(f.notified, err)
	}
}

func (f *fakeExec) rec(name string) handler {
	return func(_ context.Context, args []string) error {
		f.calls = append(f.calls, name)
		f.args = append(f.args, args)
		return nil
	}
}

func (f *fakeExec) Signup(ctx context.Context, a []string) error     { return f.rec("signup")(ctx, a) }
func (f *fakeExec) Login(ctx context.Context, a []string) error      { return f.rec("login")(ctx, a) }
func (f *fakeExec) AdminLogin(ctx context.Context, a []string) error { return f.rec("adminlogin")(ctx, a) }
func (f *fakeExec) Logout(ctx context.Context, a []string) error     { return f.rec("logout")(ctx, a) }
func (f *fakeExec) WhoAmI(ctx context.Context, a []string) error     { return f.rec("whoami")(ctx, a) }
func (f *fakeExec) ShowCV(ctx context.Context, a []string) error     { return f.rec("cv")(ctx, a) }
func (f *fakeExec) Contact(ctx context.Context, a []string) error    { return f.rec("contact")(ctx, a) }
func (f *fakeExec) Skills(ctx context.Context, a []string) error     { return f.rec("skills")(ctx, a) }
func (f *fakeExec) Summary(ctx context.Context, a []string) error    { return f.rec("summary")(ctx, a) }
func (f *fakeExec) Enhance(ctx context.Context, a []string) error    { return f.rec("enhance")(ctx, a) }
func (f *fakeExec) Accept(ctx context.Context, a []string) error     { return f.rec("accept")(ctx, a) }
func (f *fakeExec) Reject(ctx context.Context, a []string) error     { return f.rec("reject")(ctx, a) }
func (f *fakeExec) Save(ctx context.Context, a []string) error       { return f.rec("save")(ctx, a) }
func (f *fakeExec) Recommendations(ctx context.Context, a []string) error {
	return f.rec("recs")(ctx, a)
}
func (f *fakeExec) Apply(ctx context.Context, a []string) error     { return f.rec("apply")(ctx, a) }
func (f *fakeExec) Companies(ctx context.Context, a []string) error { return f.rec("companies")(ctx, a) }
func (f *fakeExec) Select(ctx context.Context, a []string) error    { return f.rec("select")(ctx, a) }
func (f *fakeExec) Enrich(ctx context.Context, a []string) error    { return f.rec("enrich")(ctx, a) }

func run(t *testing.T, f *fakeExec, input string) string {
	t.Helper()
	out := captureOutput(t)
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))
	return out.String()
}

func TestREPL_PublicCommandsSignedOut(t *testing.T) {
	f := &fakeExec{}
	run(t, f, "login alice@example.com\nsignup\nadminlogin\n")
	assert.Equal(t, []string{"login", "signup", "adminlogin"}, f.calls)
	assert.Equal(t, []string{"alice@example.com"}, f.args[0])
	assert.Empty(t, f.notified)
}

func TestREPL_ProtectedCommandNeedsSession(t *testing.T) {
	f := &fakeExec{}
	run(t, f, "cv\nsave\n")
	assert.Empty(t, f.calls)
	require.Len(t, f.notified, 2)
	assert.ErrorIs(t, f.notified[0], common.ErrNotAuthenticated)
}

func TestREPL_AdminCommandNeedsAdmin(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	run(t, f, "enrich\n")
	assert.Empty(t, f.calls)
	require.Len(t, f.notified, 1)
	assert.ErrorIs(t, f.notified[0], common.ErrNotAdmin)
	assert.ErrorIs(t, f.notified[0], common.ErrGuard)

	f = &fakeExec{loggedIn: true, admin: true}
	run(t, f, "select c1\nenrich\n")
	assert.Equal(t, []string{"select", "enrich"}, f.calls)
	assert.Equal(t, []string{"c1"}, f.args[0])
}

func TestREPL_ArgumentsAndCase(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	run(t, f, "  SKILLS add tech Go  \n\ncontact set phone +1 555\n")
	assert.Equal(t, []string{"skills", "contact"}, f.calls)
	assert.Equal(t, []string{"add", "tech", "Go"}, f.args[0])
	assert.Equal(t, []string{"set", "phone", "+1", "555"}, f.args[1])
}

func TestREPL_HelpUnknownAndExit(t *testing.T) {
	f := &fakeExec{}
	out := run(t, f, "help\nfrobnicate\nexit\nlogin\n")
	assert.Contains(t, out, helpPublic)
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Bye!")
	assert.Empty(t, f.calls, "nothing after exit runs")

	f = &fakeExec{loggedIn: true, admin: true}
	out = run(t, f, "help\n")
	assert.Contains(t, out, helpAdmin)
}

func TestREPL_LastLineWithoutNewline(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	run(t, f, "whoami")
	assert.Equal(t, []string{"whoami"}, f.calls)
}

func TestREPL_StopsOnCancelledContext(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	captureOutput(t)
	runREPL(ctx, f, func() string { return "" }, bufio.NewReader(strings.NewReader("whoami\n")))
	assert.Empty(t, f.calls)
}
