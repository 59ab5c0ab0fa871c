package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dkhromov/docboard/internal/config"
	"github.com/dkhromov/docboard/internal/documents"
	"github.com/dkhromov/docboard/internal/logging"
	"github.com/dkhromov/docboard/internal/notify"
	"github.com/dkhromov/docboard/internal/qa"
	"github.com/dkhromov/docboard/internal/session"
	"github.com/dkhromov/docboard/internal/users"
)

var errNotAuthorized = errors.New("not authorized")

// App wires the docboard services together and executes REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	users    users.Service
	docs     documents.Service
	qa       qa.Service
	session  *session.Manager
	notifier notify.Notifier
	db       *sql.DB
	reader   *bufio.Reader
}

// NewApp builds the application: it opens (and migrates) the session
// database and seeds the in-memory stores.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	now := time.Now()

	return &App{
		config:   cfg,
		log:      log,
		users:    users.NewService(users.NewMemoryRepository(users.Seed(now)...), cfg.APILatency),
		docs:     documents.NewService(documents.NewMemoryRepository(documents.Seed(now)...), cfg.APILatency),
		qa:       qa.NewService(qa.Seed(), cfg.APILatency),
		session:  session.NewManager(session.NewSQLiteStore(db), log),
		notifier: notify.NewConsoleNotifier(os.Stdout),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the session database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run restores the previous session and starts the REPL. It blocks until
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "starting", "session_dsn", a.config.SessionDSN, "api_latency", a.config.APILatency)

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "err", err)
	}

	printlnFn("Welcome to docboard (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) isAdmin() bool {
	cur := a.session.Current()
	if cur == nil {
		return false
	}
	switch cur.Role {
	case users.RoleAdmin:
		return true
	case users.RoleUser:
		return false
	default:
		return false
	}
}

// requireAdmin is the authorization checkpoint for directory administration.
func (a *App) requireAdmin() error {
	cur := a.session.Current()
	if cur == nil {
		return errNotAuthorized
	}
	switch cur.Role {
	case users.RoleAdmin:
		return nil
	case users.RoleUser:
		return errNotAuthorized
	default:
		return errNotAuthorized
	}
}

func (a *App) status() string {
	cur := a.session.Current()
	if cur == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", cur.Email, cur.Role)
}
