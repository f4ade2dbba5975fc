package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amychanwt/apply-boost/internal/auth"
	"github.com/amychanwt/apply-boost/internal/jobs"
	"github.com/amychanwt/apply-boost/internal/resumes"
	"github.com/amychanwt/apply-boost/internal/shared/config"
	"github.com/amychanwt/apply-boost/internal/shared/server"
	"github.com/amychanwt/apply-boost/internal/shared/storage/db"
	"github.com/amychanwt/apply-boost/internal/shared/storage/uploads"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         *uploads.Store
	ResumesRepo   resumes.Repo
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	AuthHandler   *auth.Handler
	JobsHandler   *jobs.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	store, err := uploads.New(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{
		Store: store,
		Repo:  repo,
		Namer: resumes.Namer{},
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Store:         store,
		ResumesRepo:   repo,
		ResumeService: resumeSvc,
		ResumeHandler: resumes.NewHandler(resumeSvc, cfg.MaxUploadBytes),
		AuthHandler:   auth.NewHandler(),
		JobsHandler:   jobs.NewHandler(cfg.JobsDelay),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		AuthHandler:   app.AuthHandler,
		ResumeHandler: app.ResumeHandler,
		JobsHandler:   app.JobsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory metadata: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory metadata: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
