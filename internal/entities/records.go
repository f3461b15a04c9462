package entities

import (
	"time"
)

// DailyEntry is one day's recorded water/calorie/step totals.
// Entries are keyed by date; writing to an existing date replaces
// the whole record.
type DailyEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD, lexicographically sortable
	WaterML   int       `json:"water_ml"`
	Calories  int       `json:"calories"`
	Steps     int       `json:"steps"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the singleton profile record. Exactly one exists per
// installation; it is materialized with defaults on first initialization.
type UserProfile struct {
	ID               int       `json:"id"` // always 1
	Name             string    `json:"name,omitempty"`
	Birthdate        string    `json:"birthdate,omitempty"` // YYYY-MM-DD
	WeightKG         float64   `json:"weight_kg"`
	HeightCM         float64   `json:"height_cm"`
	DailyWaterGoalML int       `json:"daily_water_goal_ml"`
	DailyCalorieGoal int       `json:"daily_calorie_goal"`
	DailyStepGoal    int       `json:"daily_step_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched when the caller merges onto the stored profile.
type ProfileUpdate struct {
	Name             *string  `json:"name,omitempty"`
	Birthdate        *string  `json:"birthdate,omitempty"`
	WeightKG         *float64 `json:"weight_kg,omitempty"`
	HeightCM         *float64 `json:"height_cm,omitempty"`
	DailyWaterGoalML *int     `json:"daily_water_goal_ml,omitempty"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal,omitempty"`
	DailyStepGoal    *int     `json:"daily_step_goal,omitempty"`
}

// Medicine is a tracked medication with its intake schedule.
type Medicine struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`    // e.g. "100mg"
	Frequency    string    `json:"frequency"` // e.g. "daily"
	Times        []int     `json:"times"`     // hours of day, 0..23, no duplicates
	Instructions string    `json:"instructions,omitempty"`
	TotalDoses   int       `json:"total_doses,omitempty"` // 0 = open-ended course
	DosesTaken   int       `json:"doses_taken"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MedicineUpdate carries a partial medicine change for merge-style updates.
type MedicineUpdate struct {
	Name         *string `json:"name,omitempty"`
	Dosage       *string `json:"dosage,omitempty"`
	Frequency    *string `json:"frequency,omitempty"`
	Times        []int   `json:"times,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	TotalDoses   *int    `json:"total_doses,omitempty"`
	DosesTaken   *int    `json:"doses_taken,omitempty"`
}

// DoseHistoryEntry is an append-only intake-confirmation log record.
// MedicineID is a reference, not ownership: the referenced medicine may
// have been deleted since the dose was recorded.
type DoseHistoryEntry struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"medicine_id"`
	DoseTime   int       `json:"dose_time"` // hour of day, 0..23
	TakenAt    time.Time `json:"taken_at"`
}

// Default daily goals, applied when the profile is first materialized.
const (
	DefaultWaterGoalML = 2000
	DefaultCalorieGoal = 2000
	DefaultStepGoal    = 10000
	DefaultWeightKG    = 70
	DefaultHeightCM    = 170
)

// DefaultProfile returns the profile written on first initialization.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		ID:               1,
		WeightKG:         DefaultWeightKG,
		HeightCM:         DefaultHeightCM,
		DailyWaterGoalML: DefaultWaterGoalML,
		DailyCalorieGoal: DefaultCalorieGoal,
		DailyStepGoal:    DefaultStepGoal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// DateFormat is the canonical entry-date layout. String comparison of
// dates in this layout matches chronological order.
const DateFormat = "2006-01-02"
