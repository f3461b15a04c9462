package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the health record database
	DefaultDatabasePath = "./vitalog.db"

	// DefaultTasksDatabasePath is the default path for the task queue database
	DefaultTasksDatabasePath = "./vitalog_tasks.db"
)
