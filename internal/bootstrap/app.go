package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"skiracer-backend/internal/analyzer"
	"skiracer-backend/internal/analyzer/bedrock"
	"skiracer-backend/internal/documents"
	"skiracer-backend/internal/events"
	"skiracer-backend/internal/racers"
	"skiracer-backend/internal/shared/config"
	"skiracer-backend/internal/shared/server"
	"skiracer-backend/internal/shared/storage/db"
	"skiracer-backend/internal/shared/storage/object"
	localstore "skiracer-backend/internal/shared/storage/object/local"
	s3store "skiracer-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	RacersRepo    racers.RacersRepo
	EventsRepo    events.EventsRepo
	DocumentsRepo documents.DocumentsRepo

	RacersService    *racers.Service
	EventsService    *events.Service
	DocumentsService *documents.Service

	RacersHandler    *racers.Handler
	EventsHandler    *events.Handler
	DocumentsHandler *documents.Handler
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	buildServices(ctx, app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		RacersHandler:    app.RacersHandler,
		EventsHandler:    app.EventsHandler,
		DocumentsHandler: app.DocumentsHandler,
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
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

func buildAnalyzer(ctx context.Context, cfg config.Config) analyzer.Analyzer {
	if cfg.AnalyzerProvider != "bedrock" {
		return analyzer.Unavailable{}
	}
	client, err := bedrock.New(ctx, cfg.AWSRegion, cfg.BedrockImageModelID, cfg.BedrockVideoModelID)
	if err != nil {
		log.Printf("bootstrap: analyzer unavailable, responses will degrade: %v", err)
		return analyzer.Unavailable{}
	}
	return client
}

func buildServices(ctx context.Context, app *App) {
	var racersRepo racers.RacersRepo
	var eventsRepo events.EventsRepo
	var docsRepo documents.DocumentsRepo

	var deleteHooks []func(ctx context.Context, racerID string)
	if app.DB != nil {
		racersRepo = racers.NewPGRepo(app.DB)
		eventsRepo = events.NewPGRepo(app.DB)
		docsRepo = &documents.PGRepo{DB: app.DB}
	} else {
		eventsMem := events.NewMemoryRepo()
		docsMem := documents.NewMemoryRepo()
		racersRepo = racers.NewMemoryRepo()
		eventsRepo = eventsMem
		docsRepo = docsMem
		// Memory repos have no ON DELETE CASCADE; mirror it here.
		deleteHooks = append(deleteHooks,
			func(ctx context.Context, racerID string) { _ = eventsMem.DeleteByRacer(ctx, racerID) },
			func(ctx context.Context, racerID string) { _ = docsMem.DeleteByRacer(ctx, racerID) },
		)
	}

	racersSvc := racers.NewService(racersRepo)
	racersSvc.DeleteHooks = deleteHooks
	eventsSvc := events.NewService(eventsRepo)
	docsSvc := &documents.Service{
		Repo:     docsRepo,
		Store:    app.Store,
		Analyzer: buildAnalyzer(ctx, app.Config),
	}

	app.RacersRepo = racersRepo
	app.EventsRepo = eventsRepo
	app.DocumentsRepo = docsRepo
	app.RacersService = racersSvc
	app.EventsService = eventsSvc
	app.DocumentsService = docsSvc
	app.RacersHandler = racers.NewHandler(racersSvc)
	app.EventsHandler = events.NewHandler(eventsSvc)
	app.DocumentsHandler = documents.NewHandler(docsSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
