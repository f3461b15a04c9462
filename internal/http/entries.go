package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/database"
)

// EntriesController handles daily water/calorie/step record endpoints.
type EntriesController struct {
	store *database.Store
}

func NewEntriesController(store *database.Store) *EntriesController {
	return &EntriesController{store: store}
}

// GetEntry returns the record for a single day.
// GET /api/entries/:date
func (ec *EntriesController) GetEntry(c *gin.Context) {
	date := c.Param("date")

	entry, err := ec.store.GetEntry(c.Request.Context(), date)
	if err != nil {
		respondStoreError(c, err, "get entry")
		return
	}
	if entry == nil {
		respondNotFound(c, "entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpsertEntry writes the full record for a day, replacing any existing one.
// PUT /api/entries/:date
func (ec *EntriesController) UpsertEntry(c *gin.Context) {
	date := c.Param("date")

	var req struct {
		WaterML  int `json:"water_ml"`
		Calories int `json:"calories"`
		Steps    int `json:"steps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	entry, err := ec.store.UpsertEntry(c.Request.Context(), date, req.WaterML, req.Calories, req.Steps)
	if err != nil {
		respondStoreError(c, err, "upsert entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListEntries returns all records in an inclusive date range, oldest first.
// GET /api/entries?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ec *EntriesController) ListEntries(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		respondBadRequest(c, "start and end are required")
		return
	}

	entries, err := ec.store.GetEntriesInRange(c.Request.Context(), start, end)
	if err != nil {
		respondStoreError(c, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}
