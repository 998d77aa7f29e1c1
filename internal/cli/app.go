// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/application/usecase"
	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/domain/repository"
	"github.com/bnema/dockit/internal/infrastructure/config"
	"github.com/bnema/dockit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockit/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Theme  *styles.Theme
	db     port.DatabaseProvider

	// Use cases
	InspectUC *usecase.InspectStateUseCase
	RestoreUC *usecase.RestoreLayoutUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg := loadConfig()

	logger, closer := logging.New(cfg.LoggingConfig())
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	logger.Debug().Str("db_path", dbFile).Msg("database configured")

	return &App{
		Config:    cfg,
		Theme:     newTheme(cfg.Theme),
		db:        sqlite.NewLazyDB(dbFile),
		InspectUC: usecase.NewInspectStateUseCase(),
		RestoreUC: usecase.NewRestoreLayoutUseCase(),
		ctx:       ctx,
		logCloser: closer,
	}, nil
}

// DatabasePath returns the perspective store location.
func (a *App) DatabasePath() string { return a.db.Path() }

// Perspectives opens the database and returns the perspective repository
// with its use case.
func (a *App) Perspectives() (repository.PerspectiveRepository, *usecase.ManagePerspectivesUseCase, error) {
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return nil, nil, err
	}
	repo := sqlite.NewPerspectiveRepository(db)
	return repo, usecase.NewManagePerspectivesUseCase(repo), nil
}

// NewManager creates a headless docking manager configured from the
// [docking] and [state] sections. configure, when set, adjusts the engine
// config before the manager sees it.
func (a *App) NewManager(configure func(*docking.EngineConfig)) (*docking.Manager, error) {
	engine, err := a.Config.EngineConfig()
	if err != nil {
		return nil, err
	}
	if configure != nil {
		configure(engine)
	}
	return docking.New(a.ctx, docking.Options{
		Config:        engine,
		Scheduler:     docking.NewManualScheduler(),
		StrictRestore: a.Config.State.StrictRestore,
	}), nil
}

// UseQuietLogger swaps the logger for one that never writes to stderr.
// Full-screen commands call it before drawing.
func (a *App) UseQuietLogger() {
	cfg := a.Config.LoggingConfig()
	cfg.NoStderr = true
	logger, closer := logging.New(cfg)
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	a.ctx = logging.WithContext(a.ctx, logger)
	a.logCloser = closer
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		// Return default config if loading fails
		return config.DefaultConfig()
	}
	return config.Get()
}

func newTheme(c config.ThemeConfig) *styles.Theme {
	return styles.NewThemeFromPalette(styles.Palette{
		Background: c.Background,
		Surface:    c.Surface,
		Text:       c.Text,
		Muted:      c.Muted,
		Accent:     c.Accent,
		Border:     c.Border,
		Error:      c.Error,
		Warning:    c.Warning,
	})
}
