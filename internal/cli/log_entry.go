package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/storage/providers/sqlite"
)

// LogCommand records one day's totals from the command line.
// The whole record for the date is replaced, not accumulated.
type LogCommand struct {
	DatabasePath string
	Date         string
	WaterML      int
	Calories     int
	Steps        int
}

// NewLogCommand creates a new LogCommand
func NewLogCommand() *LogCommand {
	return &LogCommand{}
}

// ParseFlags parses command line flags
func (cmd *LogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.Date, "date", time.Now().Format(entities.DateFormat), "Entry date (YYYY-MM-DD)")
	fs.IntVar(&cmd.WaterML, "water", 0, "Water intake in milliliters")
	fs.IntVar(&cmd.Calories, "calories", 0, "Calories consumed")
	fs.IntVar(&cmd.Steps, "steps", 0, "Steps walked")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s log [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Record water, calorie and step totals for a day.\n")
		fmt.Fprintf(os.Stderr, "Writing to an already-tracked date replaces the whole record.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s log -water 1500 -calories 1800 -steps 7500\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s log -date 2025-03-14 -water 2000\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the log command
func (cmd *LogCommand) Run() error {
	provider, err := sqlite.New(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer provider.Close()

	store := database.New(provider)
	ctx := context.Background()
	if err := store.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	entry, err := store.UpsertEntry(ctx, cmd.Date, cmd.WaterML, cmd.Calories, cmd.Steps)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	fmt.Printf("✅ Recorded %s: %dml water, %d calories, %d steps\n",
		entry.Date, entry.WaterML, entry.Calories, entry.Steps)
	return nil
}
