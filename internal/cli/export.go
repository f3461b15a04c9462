package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/storage/providers/sqlite"
)

// ExportCommand dumps daily records as JSON or CSV.
type ExportCommand struct {
	DatabasePath string
	Format       string
	Start        string
	End          string
	OutputPath   string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

// ParseFlags parses command line flags
func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	today := time.Now()
	defaultEnd := today.Format(entities.DateFormat)
	defaultStart := today.AddDate(-1, 0, 0).Format(entities.DateFormat)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.Format, "format", "json", "Output format: json or csv")
	fs.StringVar(&cmd.Start, "start", defaultStart, "Range start date (YYYY-MM-DD)")
	fs.StringVar(&cmd.End, "end", defaultEnd, "Range end date (YYYY-MM-DD)")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export daily records in a date range for backup or analysis.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -format csv -output entries.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -start 2025-01-01 -end 2025-03-31\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Format != "json" && cmd.Format != "csv" {
		return fmt.Errorf("unsupported format: %s", cmd.Format)
	}
	return nil
}

// Run executes the export command
func (cmd *ExportCommand) Run() error {
	provider, err := sqlite.New(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer provider.Close()

	store := database.New(provider)
	entries, err := store.GetEntriesInRange(context.Background(), cmd.Start, cmd.End)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	var out io.Writer = os.Stdout
	if cmd.OutputPath != "" {
		f, err := os.Create(cmd.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	case "csv":
		w := csv.NewWriter(out)
		_ = w.Write([]string{"date", "water_ml", "calories", "steps", "created_at"})
		for _, entry := range entries {
			_ = w.Write([]string{
				entry.Date,
				strconv.Itoa(entry.WaterML),
				strconv.Itoa(entry.Calories),
				strconv.Itoa(entry.Steps),
				entry.CreatedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}

	if cmd.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "✅ Exported %d entries to %s\n", len(entries), cmd.OutputPath)
	}
	return nil
}
