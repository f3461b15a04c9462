package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/storage/providers/sqlite"
)

// InitCommand materializes the storage file with an empty entry set and
// the default profile.
type InitCommand struct {
	DatabasePath string
}

// NewInitCommand creates a new InitCommand
func NewInitCommand() *InitCommand {
	return &InitCommand{}
}

// ParseFlags parses command line flags
func (cmd *InitCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the local database and seed it with the default profile.\n")
		fmt.Fprintf(os.Stderr, "Running it against an existing database is safe and changes nothing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the init command
func (cmd *InitCommand) Run() error {
	absPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	provider, err := sqlite.New(absPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer provider.Close()

	store := database.New(provider)
	if err := store.Initialize(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("📁 Database: %s\n", absPath)
	fmt.Printf("✅ Storage initialized (water goal %dml, calorie goal %d, step goal %d)\n",
		entities.DefaultWaterGoalML, entities.DefaultCalorieGoal, entities.DefaultStepGoal)
	return nil
}
