package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/client/admin"
	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/config"
	"github.com/dmitrijs2005/jobdesk/internal/client/cvstore"
	"github.com/dmitrijs2005/jobdesk/internal/client/editor"
	"github.com/dmitrijs2005/jobdesk/internal/client/enhance"
	"github.com/dmitrijs2005/jobdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobdesk/internal/client/services"
	"github.com/dmitrijs2005/jobdesk/internal/client/session"
	"github.com/dmitrijs2005/jobdesk/internal/client/storage"
	"github.com/dmitrijs2005/jobdesk/internal/filex"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

type App struct {
	logger  logging.Logger
	session *session.Manager
	cv      *cvstore.Store

	contact *editor.ContactEditor
	skills  *editor.SkillsEditor
	summary *editor.SummaryEditor

	recs       services.RecommendationService
	automation services.AutomationService
	console    *admin.Console

	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// deps are the collaborators App is assembled from.
type deps struct {
	logger     logging.Logger
	session    *session.Manager
	cv         *cvstore.Store
	enhancer   editor.Enhancer
	recs       services.RecommendationService
	automation services.AutomationService
	companies  services.CompanyService
	reader     *bufio.Reader
	out        io.Writer
}

func newApp(d deps) *App {
	if d.logger == nil {
		d.logger = logging.Discard()
	}
	a := &App{
		logger:     d.logger,
		session:    d.session,
		cv:         d.cv,
		contact:    editor.NewContactEditor(d.cv, d.logger),
		skills:     editor.NewSkillsEditor(d.cv, d.logger),
		summary:    editor.NewSummaryEditor(d.cv, d.enhancer, d.logger),
		recs:       d.recs,
		automation: d.automation,
		reader:     d.reader,
		out:        d.out,
	}
	a.console = admin.NewConsole(d.companies, d.logger, admin.WithRefreshHook(a.refreshCompanies))
	return a
}

// NewApp wires the client from configuration: local store, REST client,
// session, CV store, editors and services.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, closeStore, err := openStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	rest, err := api.NewRESTClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	sess := session.NewManager(rest, store, logger)
	rest.SetTokenSource(sess)

	enh, err := newEnhancer(ctx, cfg, rest)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	a := newApp(deps{
		logger:     logger,
		session:    sess,
		cv:         cvstore.New(rest, logger),
		enhancer:   enh,
		recs:       services.NewRecommendationService(rest, sess),
		automation: services.NewAutomationService(rest, sess, logger),
		companies:  services.NewCompanyService(rest, sess, logger),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	})
	a.closers = append(a.closers, closeStore)
	return a, nil
}

func openStore(ctx context.Context, path string) (metadata.Store, func() error, error) {
	if path == "" {
		return metadata.NewMemoryRepository(), func() error { return nil }, nil
	}
	path, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	return metadata.NewSQLiteStore(db), db.Close, nil
}

func newEnhancer(ctx context.Context, cfg *config.Config, rest api.CVClient) (editor.Enhancer, error) {
	switch cfg.Enhancer {
	case config.EnhancerLLM:
		llm, err := enhance.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return llm, nil
	default:
		return enhance.NewRemote(rest), nil
	}
}

// Run restores the previous session, if any, and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to jobdesk (type 'help' for commands)")

	a.session.Init(ctx)
	if s, ok := a.session.Current(); ok {
		printlnFn("Signed in as", s.User.Email)
		a.afterSignIn(ctx, nil)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close detaches the editors and releases local storage.
func (a *App) Close() error {
	a.contact.Close()
	a.skills.Close()
	a.summary.Close()

	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool { return a.session.IsAuthenticated() }

func (a *App) isAdmin() bool { return a.session.IsAdmin() }

// getStatus renders the prompt status: the user, the admin flag and a
// marker when any CV section has unsaved edits.
func (a *App) getStatus() string {
	s, ok := a.session.Current()
	if !ok {
		return ""
	}
	parts := []string{s.User.Email}
	if s.IsAdmin() {
		parts = append(parts, "admin")
	}
	if a.contact.Dirty() || a.skills.Dirty() || a.summary.Dirty() {
		parts = append(parts, "*")
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// notify reports a failed command to the user and the log. Nothing here is
// fatal; the REPL keeps running.
func (a *App) notify(ctx context.Context, err error) {
	if err == nil {
		return
	}
	printlnFn("Error:", userMessage(err))
	a.logger.Warn(ctx, "command failed", "error", err)
}

// userMessage picks the most useful single line for err.
func userMessage(err error) string {
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "server unavailable, try again later"
	}
	return err.Error()
}
