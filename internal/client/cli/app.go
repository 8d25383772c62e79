// Package cli is the interactive terminal shell of the MealKeeper client.
// Views map onto routes; every transition between them is resolved through
// the navigation guard.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/annapetrenko/mealkeeper/internal/client/api"
	"github.com/annapetrenko/mealkeeper/internal/client/auth"
	"github.com/annapetrenko/mealkeeper/internal/client/config"
	"github.com/annapetrenko/mealkeeper/internal/client/migrations"
	"github.com/annapetrenko/mealkeeper/internal/client/nav"
	"github.com/annapetrenko/mealkeeper/internal/client/repositories/metadata"
	"github.com/annapetrenko/mealkeeper/internal/client/session"
	"github.com/annapetrenko/mealkeeper/internal/filex"
	"github.com/annapetrenko/mealkeeper/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	client    api.Client
	authStore *auth.Store
	router    *nav.Router
	reader    *bufio.Reader

	// current is the view the shell is sitting on. Mutated only through
	// navigate and the session-expired hard reset.
	current nav.Target
}

// InitDatabase opens the local sqlite database and applies the embedded
// migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, err
	}
	return db, nil
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	dataDir, err := filex.EnsureSubDir("data")
	if err != nil {
		return nil, err
	}

	db, err := InitDatabase(ctx, filepath.Join(dataDir, c.DatabaseFile))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{
		config:  c,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		current: nav.Target{Name: nav.RouteHome},
	}

	tokens := session.NewTokenStore()
	storage := metadata.NewSQLiteRepository(db)

	apiClient := api.NewHTTPClient(c.ServerBaseURL, tokens,
		api.WithTimeout(c.RequestTimeout),
		api.WithSessionExpiredHandler(app.onSessionExpired))
	app.client = apiClient

	app.authStore = auth.NewStore(apiClient, tokens, storage, logger)

	router, err := nav.NewRouter(nav.DefaultRoutes(), app.authStore)
	if err != nil {
		return nil, err
	}
	app.router = router

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.authStore.IsLoggedIn()
}

// onSessionExpired is the hard-reset path for intercepted 401s: abandon the
// current view, normalize auth state through the store's own action, and
// reinitialize at the login entry point. This deliberately bypasses the
// guard; the session is untrusted and there is nothing to preserve.
func (a *App) onSessionExpired() {
	printlnFn("Session expired, please log in again.")
	a.authStore.Logout(context.Background())
	a.current = nav.Target{Name: nav.RouteLogin}
}

// status renders the REPL prompt segment.
func (a *App) status() string {
	if user := a.authStore.User(); user != nil {
		return user.Name + " @ " + a.current.Name
	}
	return a.current.Name
}

func (a *App) Run(ctx context.Context) {
	// Rehydrate and verify any stored session before the first prompt, so
	// the first navigation already sees a resolved state.
	a.authStore.InitializeAuth(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
