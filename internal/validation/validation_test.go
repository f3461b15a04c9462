package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/entities"
)

func TestCheckDailyEntry_Valid(t *testing.T) {
	assert.Empty(t, CheckDailyEntry(0, 0, 0))
	assert.Empty(t, CheckDailyEntry(2000, 1800, 12000))
	assert.Empty(t, CheckDailyEntry(MaxWaterML, MaxCalories, MaxSteps))
}

func TestCheckDailyEntry_OutOfBounds(t *testing.T) {
	assert.Len(t, CheckDailyEntry(-1, 500, 500), 1)
	assert.Len(t, CheckDailyEntry(MaxWaterML+1, 500, 500), 1)
	assert.Len(t, CheckDailyEntry(500, -10, 500), 1)
	assert.Len(t, CheckDailyEntry(500, MaxCalories+1, 500), 1)
	assert.Len(t, CheckDailyEntry(500, 500, -5), 1)
	assert.Len(t, CheckDailyEntry(500, 500, MaxSteps+1), 1)

	// one message per violated bound
	assert.Len(t, CheckDailyEntry(-1, -1, -1), 3)
}

func TestCheckProfile_Valid(t *testing.T) {
	p := entities.DefaultProfile(time.Now())
	assert.Empty(t, CheckProfile(p))

	p.Name = "Alice"
	p.Birthdate = "1990-06-15"
	assert.Empty(t, CheckProfile(p))
}

func TestCheckProfile_OutOfBounds(t *testing.T) {
	p := entities.DefaultProfile(time.Now())
	p.WeightKG = 10
	p.HeightCM = 400
	p.DailyWaterGoalML = 100
	p.DailyCalorieGoal = 500
	p.DailyStepGoal = 100

	assert.Len(t, CheckProfile(p), 5)
}

func TestCheckProfile_BadBirthdate(t *testing.T) {
	p := entities.DefaultProfile(time.Now())
	p.Birthdate = "15/06/1990"

	violations := CheckProfile(p)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "birthdate")
}

func TestCheckMedicine_Valid(t *testing.T) {
	m := entities.Medicine{
		Name:      "Aspirin",
		Dosage:    "100mg",
		Frequency: "daily",
		Times:     []int{8, 20},
	}
	assert.Empty(t, CheckMedicine(m))

	m.TotalDoses = 30
	m.DosesTaken = 3
	assert.Empty(t, CheckMedicine(m))
}

func TestCheckMedicine_MissingFields(t *testing.T) {
	violations := CheckMedicine(entities.Medicine{})
	assert.Len(t, violations, 4) // name, dosage, frequency, times
}

func TestCheckMedicine_BadTimes(t *testing.T) {
	m := entities.Medicine{
		Name:      "Aspirin",
		Dosage:    "100mg",
		Frequency: "daily",
		Times:     []int{8, 24, -1, 8},
	}
	violations := CheckMedicine(m)
	assert.Len(t, violations, 3) // 24 invalid, -1 invalid, 8 duplicated
}

func TestCheckMedicine_NegativeCounters(t *testing.T) {
	m := entities.Medicine{
		Name:       "Aspirin",
		Dosage:     "100mg",
		Frequency:  "daily",
		Times:      []int{8},
		TotalDoses: -1,
		DosesTaken: -2,
	}
	violations := CheckMedicine(m)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "total doses cannot be negative")
}

func TestCheckMedicine_ZeroTotalDosesIsOpenEnded(t *testing.T) {
	m := entities.Medicine{
		Name:      "Aspirin",
		Dosage:    "100mg",
		Frequency: "daily",
		Times:     []int{8},
	}
	assert.Empty(t, CheckMedicine(m))
}

func TestCheckEntryDate(t *testing.T) {
	assert.Empty(t, CheckEntryDate("2025-01-31"))
	assert.Len(t, CheckEntryDate(""), 1)
	assert.Len(t, CheckEntryDate("31-01-2025"), 1)
	assert.Len(t, CheckEntryDate("not-a-date"), 1)
}
