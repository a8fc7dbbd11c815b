package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/diagnostics"
	"resume-builder/internal/exportevents"
	"resume-builder/internal/exports"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/suggestions"
	"resume-builder/resume/service"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	EventsRepo         exportevents.Repo
	EventsService      *exportevents.Service
	Exporter           *service.Exporter
	Diagnostics        *diagnostics.Service
	ExportHandler      *exports.Handler
	SuggestionHandler  *suggestions.Handler
	DiagnosticsHandler *diagnostics.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		Health:             health.NewService(),
		ExportHandler:      app.ExportHandler,
		SuggestionHandler:  app.SuggestionHandler,
		DiagnosticsHandler: app.DiagnosticsHandler,
		RateLimiter:        middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory export log")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		if err = db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database unavailable; using in-memory export log: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var eventsRepo exportevents.Repo
	if app.DB != nil {
		eventsRepo = &exportevents.PGRepo{DB: app.DB}
	} else {
		eventsRepo = exportevents.NewMemoryRepo()
	}
	eventsSvc := exportevents.NewService(eventsRepo)
	exporter := service.NewExporter(eventsSvc)
	diagSvc := diagnostics.NewService(app.Config, app.DB)

	app.EventsRepo = eventsRepo
	app.EventsService = eventsSvc
	app.Exporter = exporter
	app.Diagnostics = diagSvc
	app.ExportHandler = exports.NewHandler(exporter, eventsSvc)
	app.SuggestionHandler = suggestions.NewHandler()
	app.DiagnosticsHandler = diagnostics.NewHandler(diagSvc)
}
