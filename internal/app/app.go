package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/intervu/intervu/internal/config"
	"github.com/intervu/intervu/internal/database"
	"github.com/intervu/intervu/internal/engine"
	"github.com/intervu/intervu/internal/session"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Config *config.Config
	Repo   *database.Repository
	Engine *engine.Engine
}

// NewApp initializes and returns a new App instance. The session state is
// rehydrated from the database so interviews survive a process restart.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig

	db, err := database.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)
	state, err := repo.LoadSnapshot()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	logOut := io.Discard
	if cfg.Verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := engine.New(session.Restore(state), repo, engine.WithLogger(logger))

	return &App{
		DB:     db,
		Config: cfg,
		Repo:   repo,
		Engine: eng,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
