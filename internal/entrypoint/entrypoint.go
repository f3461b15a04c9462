package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/analytics"
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/database"
	http_controllers "github.com/vitalog/vitalog/internal/http"
	"github.com/vitalog/vitalog/internal/scheduler"
	"github.com/vitalog/vitalog/internal/storage"
	"github.com/vitalog/vitalog/internal/storage/providers/memory"
	"github.com/vitalog/vitalog/internal/storage/providers/redis"
	"github.com/vitalog/vitalog/internal/storage/providers/sqlite"
	"github.com/vitalog/vitalog/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server with
	// the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop schedulers and task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// newAdapter builds the storage adapter for the configured backend.
func newAdapter(cfg *config.Config) (storage.Adapter, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.New(cfg.Storage.SQLitePath)
	case config.BackendRedis:
		return redis.New(redis.Config{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		}), nil
	case config.BackendMemory:
		log.Printf("WARNING: using in-memory storage, records are lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Vitalog v%s", version)

	// Initialize storage
	adapter, err := newAdapter(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}()

	store := database.New(adapter)
	if err := store.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	log.Printf("Storage backend: %s", cfg.Storage.Backend)

	// Analytics engine reads through the same store
	engine := analytics.New(store)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Tasks.DatabasePath, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewDoseReminderQueue(store),
			tasks.NewDailySummaryQueue(engine),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start schedulers; both need the task queue to do anything
	var reminderScheduler *scheduler.ReminderScheduler
	var summaryScheduler *scheduler.SummaryScheduler
	if taskClient != nil {
		if cfg.Reminders.Enabled {
			reminderScheduler = scheduler.NewReminderScheduler(store, taskClient, cfg.Reminders.Schedule)
			if err := reminderScheduler.Start(context.Background()); err != nil {
				log.Fatalf("Failed to start reminder scheduler: %v", err)
			}
		} else {
			log.Printf("Reminder scheduler: disabled")
		}

		if cfg.Summary.Enabled {
			summaryScheduler = scheduler.NewSummaryScheduler(taskClient, cfg.Summary.Schedule)
			if err := summaryScheduler.Start(context.Background()); err != nil {
				log.Fatalf("Failed to start summary scheduler: %v", err)
			}
		} else {
			log.Printf("Summary scheduler: disabled")
		}
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Store:      store,
		Engine:     engine,
		TaskClient: taskClient,
		Version:    version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if reminderScheduler != nil {
			reminderScheduler.Stop()
		}
		if summaryScheduler != nil {
			summaryScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
