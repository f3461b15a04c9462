package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
)

// ProfileController handles the singleton user profile endpoints.
type ProfileController struct {
	store *database.Store
}

func NewProfileController(store *database.Store) *ProfileController {
	return &ProfileController{store: store}
}

// GetProfile returns the stored profile.
// GET /api/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.store.GetProfile(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "get profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile merges a partial update onto the stored profile and saves
// the result. Fields absent from the request body are left untouched.
// PUT /api/profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var update entities.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	current, err := pc.store.GetProfile(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "get profile for update")
		return
	}
	if current == nil {
		// Storage was wiped out from under us; rebuild from defaults
		fresh := entities.DefaultProfile(time.Now())
		current = &fresh
	}

	merged := mergeProfileUpdate(*current, update)
	saved, err := pc.store.SaveProfile(c.Request.Context(), merged)
	if err != nil {
		respondStoreError(c, err, "save profile")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// mergeProfileUpdate applies the non-nil fields of an update onto a profile.
func mergeProfileUpdate(p entities.UserProfile, update entities.ProfileUpdate) entities.UserProfile {
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Birthdate != nil {
		p.Birthdate = *update.Birthdate
	}
	if update.WeightKG != nil {
		p.WeightKG = *update.WeightKG
	}
	if update.HeightCM != nil {
		p.HeightCM = *update.HeightCM
	}
	if update.DailyWaterGoalML != nil {
		p.DailyWaterGoalML = *update.DailyWaterGoalML
	}
	if update.DailyCalorieGoal != nil {
		p.DailyCalorieGoal = *update.DailyCalorieGoal
	}
	if update.DailyStepGoal != nil {
		p.DailyStepGoal = *update.DailyStepGoal
	}
	return p
}
