// Package validation holds the pure domain-constraint checks applied
// before any record is persisted. Each check returns a list of
// human-readable violations; an empty list means the record is valid.
package validation

import (
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/entities"
)

// Value bounds for daily entries.
const (
	MaxWaterML  = 10000
	MaxCalories = 10000
	MaxSteps    = 100000
)

// Value bounds for profile fields.
const (
	MinWeightKG    = 20
	MaxWeightKG    = 500
	MinHeightCM    = 50
	MaxHeightCM    = 300
	MinWaterGoalML = 500
	MaxWaterGoalML = 5000
	MinCalorieGoal = 1200
	MaxCalorieGoal = 4000
	MinStepGoal    = 1000
	MaxStepGoal    = 50000
)

// CheckDailyEntry validates the three daily metrics against their bounds.
func CheckDailyEntry(waterML, calories, steps int) []string {
	var violations []string
	if waterML < 0 || waterML > MaxWaterML {
		violations = append(violations, fmt.Sprintf("water must be between 0 and %d ml", MaxWaterML))
	}
	if calories < 0 || calories > MaxCalories {
		violations = append(violations, fmt.Sprintf("calories must be between 0 and %d", MaxCalories))
	}
	if steps < 0 || steps > MaxSteps {
		violations = append(violations, fmt.Sprintf("steps must be between 0 and %d", MaxSteps))
	}
	return violations
}

// CheckProfile validates a full profile record. Name and birthdate are
// optional; birthdate is format-checked only when set.
func CheckProfile(p entities.UserProfile) []string {
	var violations []string
	if p.WeightKG < MinWeightKG || p.WeightKG > MaxWeightKG {
		violations = append(violations, fmt.Sprintf("weight must be between %d and %d kg", MinWeightKG, MaxWeightKG))
	}
	if p.HeightCM < MinHeightCM || p.HeightCM > MaxHeightCM {
		violations = append(violations, fmt.Sprintf("height must be between %d and %d cm", MinHeightCM, MaxHeightCM))
	}
	if p.DailyWaterGoalML < MinWaterGoalML || p.DailyWaterGoalML > MaxWaterGoalML {
		violations = append(violations, fmt.Sprintf("daily water goal must be between %d and %d ml", MinWaterGoalML, MaxWaterGoalML))
	}
	if p.DailyCalorieGoal < MinCalorieGoal || p.DailyCalorieGoal > MaxCalorieGoal {
		violations = append(violations, fmt.Sprintf("daily calorie goal must be between %d and %d", MinCalorieGoal, MaxCalorieGoal))
	}
	if p.DailyStepGoal < MinStepGoal || p.DailyStepGoal > MaxStepGoal {
		violations = append(violations, fmt.Sprintf("daily step goal must be between %d and %d", MinStepGoal, MaxStepGoal))
	}
	if p.Birthdate != "" {
		if _, err := time.Parse(entities.DateFormat, p.Birthdate); err != nil {
			violations = append(violations, "birthdate must be a YYYY-MM-DD date")
		}
	}
	return violations
}

// CheckMedicine validates a full medicine record.
func CheckMedicine(m entities.Medicine) []string {
	var violations []string
	if m.Name == "" {
		violations = append(violations, "name is required")
	}
	if m.Dosage == "" {
		violations = append(violations, "dosage is required")
	}
	if m.Frequency == "" {
		violations = append(violations, "frequency is required")
	}
	if len(m.Times) == 0 {
		violations = append(violations, "at least one intake time is required")
	}
	seen := make(map[int]bool, len(m.Times))
	for _, hour := range m.Times {
		if hour < 0 || hour > 23 {
			violations = append(violations, fmt.Sprintf("intake time %d is not a valid hour (0-23)", hour))
			continue
		}
		if seen[hour] {
			violations = append(violations, fmt.Sprintf("intake time %d is listed twice", hour))
		}
		seen[hour] = true
	}
	// Zero means an open-ended course, so only negatives are rejected.
	if m.TotalDoses < 0 {
		violations = append(violations, "total doses cannot be negative")
	}
	if m.DosesTaken < 0 {
		violations = append(violations, "doses taken cannot be negative")
	}
	return violations
}

// CheckEntryDate validates the entry key format. Range queries rely on
// string comparison, so the date must be in the canonical layout.
func CheckEntryDate(date string) []string {
	if date == "" {
		return []string{"date is required"}
	}
	if _, err := time.Parse(entities.DateFormat, date); err != nil {
		return []string{"date must be a YYYY-MM-DD date"}
	}
	return nil
}
