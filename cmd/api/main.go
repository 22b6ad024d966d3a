package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/avarialab/avaria/internal/application/analysis"
	"github.com/avarialab/avaria/internal/config"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
	"github.com/avarialab/avaria/internal/infra/ai/groq"
	memorydb "github.com/avarialab/avaria/internal/infra/db/memory"
	mysqldb "github.com/avarialab/avaria/internal/infra/db/mysql"
	postgresdb "github.com/avarialab/avaria/internal/infra/db/postgres"
	"github.com/avarialab/avaria/internal/infra/httpserver"
	minioStore "github.com/avarialab/avaria/internal/infra/storage"
	"github.com/avarialab/avaria/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()
	checkers := map[string]middleware.HealthChecker{}

	// pick the repository backend
	var repo domain.Repository
	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysqldb.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqldb.NewAnalysisRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresdb.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresdb.NewAnalysisRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "":
		log.Println("no database driver configured, using in-memory store")
		repo = memorydb.NewAnalysisRepository()
	default:
		log.Fatalf("unknown database driver: %q", cfg.Database.Driver)
	}

	// optional report archive
	var artifacts appanalysis.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	ai := groq.NewClient(
		cfg.Groq.APIKey,
		cfg.Groq.BaseURL,
		cfg.Groq.VisionModel,
		cfg.Groq.ReasoningModel,
	)

	svc := &appanalysis.Service{
		Repo:      repo,
		Vision:    ai,
		Reasoning: ai,
		Artifacts: artifacts,
		Guard: appanalysis.Guard{
			MaxImages:    cfg.Upload.MaxImages,
			MaxFileBytes: cfg.Upload.MaxFileBytes,
		},
		Clock:        appanalysis.SystemClock{},
		StageTimeout: cfg.StageTimeout(),
	}

	mux := chi.NewRouter()
	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Upload.MaxFileBytes))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
		// analyze waits on two sequential model calls
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
