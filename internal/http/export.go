package http

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
)

// ExportController serves daily-record dumps for backup purposes.
type ExportController struct {
	store *database.Store
}

func NewExportController(store *database.Store) *ExportController {
	return &ExportController{store: store}
}

// ExportEntries streams all records in a range as JSON or CSV.
// Defaults to the last 365 days when no range is given.
// GET /api/export/entries?format=csv&start=YYYY-MM-DD&end=YYYY-MM-DD
func (xc *ExportController) ExportEntries(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		today := time.Now()
		end = today.Format(entities.DateFormat)
		start = today.AddDate(-1, 0, 0).Format(entities.DateFormat)
	}

	entries, err := xc.store.GetEntriesInRange(c.Request.Context(), start, end)
	if err != nil {
		respondStoreError(c, err, "export entries")
		return
	}

	format := c.DefaultQuery("format", "json")
	switch format {
	case "json":
		c.Header("Content-Disposition", `attachment; filename="entries.json"`)
		c.JSON(http.StatusOK, entries)
	case "csv":
		xc.writeCSV(c, entries)
	default:
		respondBadRequest(c, "unsupported format: "+format)
	}
}

func (xc *ExportController) writeCSV(c *gin.Context, entries []entities.DailyEntry) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="entries.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
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
		// Headers already sent, nothing to do for the client
		log.Printf("csv export write failed: %v", err)
	}
}
