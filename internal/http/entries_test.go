package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/storage/providers/memory"
)

func setupTestStore(t *testing.T) *database.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.New(memory.New())
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func TestEntriesController_UpsertEntry(t *testing.T) {
	t.Run("creates a new entry", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewEntriesController(store)
		router := gin.New()
		router.PUT("/api/entries/:date", controller.UpsertEntry)

		body := bytes.NewBufferString(`{"water_ml": 1500, "calories": 1800, "steps": 7500}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/entries/2025-03-15", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entry entities.DailyEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "2025-03-15", entry.Date)
		assert.Equal(t, 1500, entry.WaterML)
		assert.Greater(t, entry.ID, int64(0))
	})

	t.Run("replaces an existing entry instead of accumulating", func(t *testing.T) {
		store := setupTestStore(t)

		_, err := store.UpsertEntry(context.Background(), "2025-03-15", 500, 400, 1000)
		require.NoError(t, err)

		controller := NewEntriesController(store)
		router := gin.New()
		router.PUT("/api/entries/:date", controller.UpsertEntry)

		body := bytes.NewBufferString(`{"water_ml": 2000, "calories": 1600, "steps": 9000}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/entries/2025-03-15", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		saved, err := store.GetEntry(context.Background(), "2025-03-15")
		require.NoError(t, err)
		assert.Equal(t, 2000, saved.WaterML)
	})

	t.Run("rejects out-of-range values with violations", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewEntriesController(store)
		router := gin.New()
		router.PUT("/api/entries/:date", controller.UpsertEntry)

		body := bytes.NewBufferString(`{"water_ml": -5, "calories": 999999, "steps": 100}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/entries/2025-03-15", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed", resp.Error)
		assert.NotNil(t, resp.Details)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewEntriesController(store)
		router := gin.New()
		router.PUT("/api/entries/:date", controller.UpsertEntry)

		body := bytes.NewBufferString(`{"water_ml": 100, "calories": 100, "steps": 100}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/entries/not-a-date", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEntriesController_GetEntry(t *testing.T) {
	t.Run("returns an existing entry", func(t *testing.T) {
		store := setupTestStore(t)

		_, err := store.UpsertEntry(context.Background(), "2025-03-15", 1200, 900, 4000)
		require.NoError(t, err)

		controller := NewEntriesController(store)
		router := gin.New()
		router.GET("/api/entries/:date", controller.GetEntry)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/entries/2025-03-15", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entry entities.DailyEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, 1200, entry.WaterML)
	})

	t.Run("returns 404 for an untracked day", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewEntriesController(store)
		router := gin.New()
		router.GET("/api/entries/:date", controller.GetEntry)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/entries/2025-03-15", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEntriesController_ListEntries(t *testing.T) {
	t.Run("returns entries in range sorted by date", func(t *testing.T) {
		store := setupTestStore(t)

		ctx := context.Background()
		_, err := store.UpsertEntry(ctx, "2025-03-12", 100, 100, 100)
		require.NoError(t, err)
		_, err = store.UpsertEntry(ctx, "2025-03-10", 200, 200, 200)
		require.NoError(t, err)
		_, err = store.UpsertEntry(ctx, "2025-03-20", 300, 300, 300)
		require.NoError(t, err)

		controller := NewEntriesController(store)
		router := gin.New()
		router.GET("/api/entries", controller.ListEntries)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/entries?start=2025-03-10&end=2025-03-15", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entries []entities.DailyEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "2025-03-10", entries[0].Date)
		assert.Equal(t, "2025-03-12", entries[1].Date)
	})

	t.Run("requires start and end", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewEntriesController(store)
		router := gin.New()
		router.GET("/api/entries", controller.ListEntries)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/entries?start=2025-03-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
