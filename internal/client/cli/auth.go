package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/common"
)

// getSimpleText, getPassword, getMultiline and getLines are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getLines      = GetLines
)

// promptEmail returns the email given inline or asks for it.
func (a *App) promptEmail(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}

// Signup creates a regular account and signs in with it. The password is
// wiped before returning.
func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return err
	}

	prev := a.currentUser()
	user, err := a.session.Signup(ctx, email, string(password), fullName)
	if err != nil {
		return err
	}
	printlnFn("Account created. Signed in as", user.Email)
	a.afterSignIn(ctx, prev)
	return nil
}

// Login authenticates a regular user.
func (a *App) Login(ctx context.Context, args []string) error {
	return a.login(ctx, args, false)
}

// AdminLogin authenticates against the admin endpoint.
func (a *App) AdminLogin(ctx context.Context, args []string) error {
	return a.login(ctx, args, true)
}

func (a *App) login(ctx context.Context, args []string, asAdmin bool) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	prev := a.currentUser()
	user, err := a.session.Login(ctx, email, string(password), asAdmin)
	if err != nil {
		return err
	}
	printlnFn("Signed in as", user.Email, "("+string(user.Role)+")")
	a.afterSignIn(ctx, prev)
	return nil
}

// currentUser returns the signed-in user, or nil.
func (a *App) currentUser() *models.User {
	s, ok := a.session.Current()
	if !ok {
		return nil
	}
	return s.User
}

// afterSignIn drops state that belonged to prev when the identity changed,
// then loads the CV for candidates. Administrators start in the company
// console and do not need one. A failed load leaves no document behind.
func (a *App) afterSignIn(ctx context.Context, prev *models.User) {
	cur := a.currentUser()
	if prev == nil || cur == nil || prev.ID != cur.ID || prev.Role != cur.Role {
		a.cv.Clear()
		a.console.ClearSelection()
	}
	if a.session.IsAdmin() {
		return
	}
	if _, err := a.cv.Load(ctx); err != nil {
		a.cv.Clear()
		a.notify(ctx, err)
	}
}

// Logout forgets the session and every piece of state derived from it.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	a.cv.Clear()
	a.console.ClearSelection()
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in user and, when the token carries one, its
// expiry.
func (a *App) WhoAmI(_ context.Context, _ []string) error {
	s, ok := a.session.Current()
	if !ok {
		return common.ErrNotAuthenticated
	}
	printlnFn("Email:", s.User.Email)
	if s.User.FullName != "" {
		printlnFn("Name: ", s.User.FullName)
	}
	printlnFn("Role: ", string(s.User.Role))
	if !s.User.IsActive {
		printlnFn("Account is inactive")
	}
	if exp, ok := a.session.ExpiresAt(); ok {
		printlnFn("Token expires:", exp.Local().Format(time.RFC1123))
	}
	return nil
}
