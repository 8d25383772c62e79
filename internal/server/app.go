// Package server initializes and runs the MealKeeper backend: it opens the
// database, applies migrations, wires services and starts the HTTP API with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/annapetrenko/mealkeeper/internal/logging"
	"github.com/annapetrenko/mealkeeper/internal/server/config"
	"github.com/annapetrenko/mealkeeper/internal/server/httpapi"
	"github.com/annapetrenko/mealkeeper/internal/server/repositories/repomanager"
	"github.com/annapetrenko/mealkeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	svc    httpapi.Services
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userSvc := services.NewUserService(db, rm, c)
	depSvc := services.NewDependentService(db, rm)
	planSvc := services.NewPlanService(db, rm, depSvc)

	svc := httpapi.Services{
		Users:         userSvc,
		Dependents:    depSvc,
		Plans:         planSvc,
		Meals:         services.NewMealService(db, rm, planSvc),
		Medications:   services.NewMedicationService(db, rm, planSvc),
		Recipes:       services.NewRecipeService(db, rm, c),
		Notifications: services.NewNotificationService(db, rm),
		HealthForms:   services.NewHealthFormService(db, rm, depSvc),
	}

	return &App{config: c, logger: logger, db: db, svc: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.config.SecretKey, app.svc)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run() {

	ctx, cancelFunc := context.WithCancel(context.Background())

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
}
