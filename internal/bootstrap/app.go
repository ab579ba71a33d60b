package bootstrap

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"

	googleauth "cvbuilder-backend/internal/auth"
	"cvbuilder-backend/internal/generation"
	"cvbuilder-backend/internal/llm"
	openai "cvbuilder-backend/internal/llm/openai"
	"cvbuilder-backend/internal/resumes"
	"cvbuilder-backend/internal/shared/auth"
	"cvbuilder-backend/internal/shared/config"
	"cvbuilder-backend/internal/shared/server"
	"cvbuilder-backend/internal/shared/storage/db"
	"cvbuilder-backend/internal/shared/telemetry"
	"cvbuilder-backend/internal/templates"
	"cvbuilder-backend/internal/users"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersRepo   users.Repo
	ResumesRepo resumes.Repo

	UsersService   *users.Service
	ResumesService *resumes.Service
	Gateway        *generation.Gateway
}

// Build prepares the full dependency graph. With no reachable database in
// dev the repos fall back to memory; production requires Postgres.
func Build(cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			if cfg.Env == "production" {
				return nil, err
			}
			telemetry.Warn("db.unavailable", map[string]any{"error": err.Error()})
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			if cfg.Env == "production" {
				return nil, err
			}
			telemetry.Warn("db.migrate_failed", map[string]any{"error": err.Error()})
			_ = conn.Close()
		} else {
			app.DB = conn
		}
	}

	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		telemetry.Info("storage.memory", nil)
		app.UsersRepo = users.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}

	signer := auth.NewSigner(cfg.JWTSecret, cfg.JWTExpiration)
	app.UsersService = users.NewService(app.UsersRepo, signer)

	catalog := templates.NewCatalog()
	app.ResumesService = resumes.NewService(app.ResumesRepo, catalog)

	app.Gateway = generation.NewGateway(buildLLMClient(cfg), cfg.LLMTimeout)

	var google *googleauth.GoogleService
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		google = googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			app.UsersService,
		)
	}

	app.Router = server.NewRouter(server.Deps{
		Config:     cfg,
		Signer:     signer,
		Users:      users.NewHandler(app.UsersService),
		GoogleAuth: google,
		Templates:  templates.NewHandler(catalog),
		Resumes:    resumes.NewHandler(app.ResumesService),
		Generation: generation.NewHandler(app.Gateway),
	})
	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "openai" || cfg.OpenAIAPIKey == "" {
		telemetry.Info("llm.placeholder", map[string]any{"provider": cfg.LLMProvider})
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		telemetry.Warn("llm.misconfigured", map[string]any{"error": err.Error()})
		return llm.PlaceholderClient{}
	}
	return client
}
