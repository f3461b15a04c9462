package config

import (
	"time"

	"github.com/spf13/viper"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite" // Local file database (default)
	BackendRedis  Backend = "redis"  // Shared cross-process store
	BackendMemory Backend = "memory" // In-process only, lost on restart
)

type (
	Config struct {
		HTTP
		Storage
		Reminders
		Summary
		Tasks
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Storage struct {
		Backend       Backend
		SQLitePath    string
		RedisAddr     string
		RedisPassword string
		RedisDB       int
	}
	Reminders struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Summary struct {
		Enabled  bool
		Schedule string // Cron format: "0 21 * * *" = daily at 21:00
	}
	Tasks struct {
		Enabled           bool
		DatabasePath      string
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8187)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("storage_backend", "sqlite")
	v.SetDefault("sqlite_path", DefaultDatabasePath)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("reminders_enabled", false)
	v.SetDefault("reminders_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("summary_enabled", false)
	v.SetDefault("summary_schedule", "0 21 * * *") // Daily at 21:00

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_database_path", DefaultTasksDatabasePath)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Storage: Storage{
			Backend:       Backend(v.GetString("STORAGE_BACKEND")),
			SQLitePath:    v.GetString("SQLITE_PATH"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
		Reminders: Reminders{
			Enabled:  v.GetBool("REMINDERS_ENABLED"),
			Schedule: v.GetString("REMINDERS_SCHEDULE"),
		},
		Summary: Summary{
			Enabled:  v.GetBool("SUMMARY_ENABLED"),
			Schedule: v.GetString("SUMMARY_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			DatabasePath:      v.GetString("TASKS_DATABASE_PATH"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
