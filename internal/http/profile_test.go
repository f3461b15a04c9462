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

	"github.com/vitalog/vitalog/internal/entities"
)

func TestProfileController_GetProfile(t *testing.T) {
	t.Run("returns the default profile after initialization", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewProfileController(store)
		router := gin.New()
		router.GET("/api/profile", controller.GetProfile)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/profile", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var profile entities.UserProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, 1, profile.ID)
		assert.Equal(t, entities.DefaultWaterGoalML, profile.DailyWaterGoalML)
	})
}

func TestProfileController_UpdateProfile(t *testing.T) {
	t.Run("merges partial updates onto the stored profile", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewProfileController(store)
		router := gin.New()
		router.PUT("/api/profile", controller.UpdateProfile)

		body := bytes.NewBufferString(`{"name": "Alex", "daily_step_goal": 12000}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profile", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var profile entities.UserProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, "Alex", profile.Name)
		assert.Equal(t, 12000, profile.DailyStepGoal)
		// Fields absent from the request keep their stored values
		assert.Equal(t, entities.DefaultWaterGoalML, profile.DailyWaterGoalML)
		assert.Equal(t, float64(entities.DefaultWeightKG), profile.WeightKG)
	})

	t.Run("second update keeps earlier changes", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewProfileController(store)
		router := gin.New()
		router.PUT("/api/profile", controller.UpdateProfile)

		first := bytes.NewBufferString(`{"name": "Alex"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profile", first)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		second := bytes.NewBufferString(`{"weight_kg": 64.5}`)
		w = httptest.NewRecorder()
		req, _ = http.NewRequest("PUT", "/api/profile", second)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		saved, err := store.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Alex", saved.Name)
		assert.Equal(t, 64.5, saved.WeightKG)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewProfileController(store)
		router := gin.New()
		router.PUT("/api/profile", controller.UpdateProfile)

		body := bytes.NewBufferString(`{"weight_kg": -10}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profile", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed birthdate", func(t *testing.T) {
		store := setupTestStore(t)

		controller := NewProfileController(store)
		router := gin.New()
		router.PUT("/api/profile", controller.UpdateProfile)

		body := bytes.NewBufferString(`{"birthdate": "15/03/1990"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profile", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
