package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"edubot-backend/internal/documents"
	"edubot-backend/internal/generations"
	"edubot-backend/internal/llm"
	"edubot-backend/internal/llm/gemini"
	"edubot-backend/internal/llm/openai"
	"edubot-backend/internal/quota"
	"edubot-backend/internal/shared/config"
	"edubot-backend/internal/shared/server"
	"edubot-backend/internal/shared/storage/db"
	"edubot-backend/internal/shared/storage/object"
	localstore "edubot-backend/internal/shared/storage/object/local"
	s3store "edubot-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client
	Store  object.ObjectStore
	Model  llm.Client

	DocumentsRepo   documents.Repo
	GenerationsRepo generations.Repo

	QuotaService       *quota.Service
	DocumentsService   *documents.Service
	GenerationsService *generations.Service

	DocumentsHandler   *documents.Handler
	GenerationsHandler *generations.Handler
	QuotaHandler       *quota.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	model, err := buildModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisClient, quotaStore, err := buildQuotaStore(cfg, sqlDB)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  redisClient,
		Store:  store,
		Model:  model,
	}

	buildServices(app, quotaStore)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		DocumentsHandler:   app.DocumentsHandler,
		GenerationsHandler: app.GenerationsHandler,
		QuotaHandler:       app.QuotaHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildModel(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder model")
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	default:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: GEMINI_API_KEY empty; using placeholder model")
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	}
}

// buildQuotaStore selects the quota backend. An explicit QUOTA_BACKEND wins;
// otherwise the store follows the database: Postgres when connected,
// in-memory for dev without one.
func buildQuotaStore(cfg config.Config, sqlDB *sql.DB) (*redis.Client, quota.Store, error) {
	switch cfg.QuotaBackend {
	case "redis":
		if strings.TrimSpace(cfg.RedisURL) == "" {
			return nil, nil, fmt.Errorf("QUOTA_BACKEND=redis requires REDIS_URL")
		}
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		return client, quota.NewRedisStore(client), nil
	case "postgres":
		if sqlDB == nil {
			return nil, nil, fmt.Errorf("QUOTA_BACKEND=postgres requires a database connection")
		}
		return nil, quota.NewPGStore(sqlDB), nil
	default:
		if sqlDB != nil {
			return nil, quota.NewPGStore(sqlDB), nil
		}
		return nil, quota.NewMemoryStore(), nil
	}
}

func buildServices(app *App, quotaStore quota.Store) {
	var docRepo documents.Repo
	var genRepo generations.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		genRepo = &generations.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		genRepo = generations.NewMemoryRepo()
	}

	quotaSvc := quota.NewService(quotaStore)
	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	genSvc := &generations.Service{
		Docs:              docRepo,
		Store:             app.Store,
		Quota:             quotaSvc,
		Model:             app.Model,
		Repo:              genRepo,
		LegacyModelErrors: app.Config.LegacyModelErrors,
	}

	app.DocumentsRepo = docRepo
	app.GenerationsRepo = genRepo
	app.QuotaService = quotaSvc
	app.DocumentsService = docSvc
	app.GenerationsService = genSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.GenerationsHandler = generations.NewHandler(genSvc)
	app.QuotaHandler = quota.NewHandler(quotaSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
