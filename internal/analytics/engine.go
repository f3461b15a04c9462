// Package analytics derives goal progress, trends, achievements and
// insights from ranges of stored daily entries. It only ever reads from
// the record store.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/entities"
)

// Engine computes derived views over the record store.
type Engine struct {
	store *database.Store

	// now is swappable in tests.
	now func() time.Time
}

func New(store *database.Store) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
	}
}

// Averages holds per-metric arithmetic means over a window. DaysTracked
// counts the entries found, not the calendar days in the window: days
// without an entry are excluded from the denominator.
type Averages struct {
	Water       float64 `json:"water"`
	Calories    float64 `json:"calories"`
	Steps       float64 `json:"steps"`
	DaysTracked int     `json:"days_tracked"`
}

// IsZero reports whether the window has no recorded activity at all.
func (a Averages) IsZero() bool {
	return a.Water == 0 && a.Calories == 0 && a.Steps == 0
}

// AveragesOverRange computes the mean of each metric over the entries
// stored in [startDate, endDate]. An empty range yields all zeros.
func (e *Engine) AveragesOverRange(ctx context.Context, startDate, endDate string) (Averages, error) {
	entries, err := e.store.GetEntriesInRange(ctx, startDate, endDate)
	if err != nil {
		return Averages{}, err
	}
	if len(entries) == 0 {
		return Averages{}, nil
	}

	var water, calories, steps int
	for _, entry := range entries {
		water += entry.WaterML
		calories += entry.Calories
		steps += entry.Steps
	}

	n := float64(len(entries))
	return Averages{
		Water:       round2(float64(water) / n),
		Calories:    round2(float64(calories) / n),
		Steps:       round2(float64(steps) / n),
		DaysTracked: len(entries),
	}, nil
}

// ProgressPercentage expresses current as a percentage of goal, clamped
// to 100. A zero goal yields 0 rather than a division by zero.
func ProgressPercentage(current, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	pct := current / goal * 100
	if pct > 100 {
		return 100
	}
	return round2(pct)
}

// Trend classifies recent progress relative to the prior window.
type Trend string

const (
	TrendNew       Trend = "new"
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// ClassifyTrend compares two windows. A previous window with no
// recorded activity means there is nothing to compare against: "new".
// Otherwise the percent changes of the three metrics are averaged;
// metrics whose previous value is zero are skipped so a single
// untracked metric cannot poison the average with a division by zero.
func ClassifyTrend(current, previous Averages) Trend {
	if previous.IsZero() {
		return TrendNew
	}

	var sum float64
	var counted int
	pairs := [][2]float64{
		{current.Water, previous.Water},
		{current.Calories, previous.Calories},
		{current.Steps, previous.Steps},
	}
	for _, pair := range pairs {
		if pair[1] == 0 {
			continue
		}
		sum += (pair[0] - pair[1]) / pair[1] * 100
		counted++
	}
	if counted == 0 {
		return TrendNew
	}

	avg := sum / float64(counted)
	switch {
	case avg > 10:
		return TrendImproving
	case avg < -10:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ChartPoint is one calendar-day bucket of a dense chart series.
type ChartPoint struct {
	Date     string `json:"date"`
	Water    int    `json:"water"`
	Calories int    `json:"calories"`
	Steps    int    `json:"steps"`
	Label    string `json:"label"`
}

// ChartSeries builds exactly days consecutive calendar-day buckets
// ending today. Days with no stored entry are filled with zeros, so the
// series is dense even over an empty history.
func (e *Engine) ChartSeries(ctx context.Context, days int) ([]ChartPoint, error) {
	if days <= 0 {
		return nil, &database.InputError{Message: "days must be positive"}
	}

	today := e.now()
	start := today.AddDate(0, 0, -(days - 1))

	entries, err := e.store.GetEntriesInRange(ctx,
		start.Format(entities.DateFormat),
		today.Format(entities.DateFormat))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]entities.DailyEntry, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	series := make([]ChartPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(entities.DateFormat)
		entry := byDate[date] // zero value when untracked

		series = append(series, ChartPoint{
			Date:     date,
			Water:    entry.WaterML,
			Calories: entry.Calories,
			Steps:    entry.Steps,
			Label:    chartLabel(day, days),
		})
	}
	return series, nil
}

// chartLabel keeps short series readable by weekday and longer ones by
// calendar date.
func chartLabel(day time.Time, days int) string {
	if days <= 7 {
		return day.Format("Mon")
	}
	return day.Format("Jan 2")
}

// Summary aggregates the three standard windows and their trend.
type Summary struct {
	Today    Averages `json:"today"`
	ThisWeek Averages `json:"this_week"`
	LastWeek Averages `json:"last_week"`
	Trend    Trend    `json:"trend"`
}

// SummaryStats combines today's entry, the last 7 days and the 7 days
// before that, plus the trend between the two weeks.
func (e *Engine) SummaryStats(ctx context.Context) (*Summary, error) {
	today := e.now()
	date := today.Format(entities.DateFormat)

	todayAvg, err := e.AveragesOverRange(ctx, date, date)
	if err != nil {
		return nil, err
	}

	weekStart := today.AddDate(0, 0, -6)
	thisWeek, err := e.AveragesOverRange(ctx, weekStart.Format(entities.DateFormat), date)
	if err != nil {
		return nil, err
	}

	lastWeekEnd := weekStart.AddDate(0, 0, -1)
	lastWeekStart := lastWeekEnd.AddDate(0, 0, -6)
	lastWeek, err := e.AveragesOverRange(ctx, lastWeekStart.Format(entities.DateFormat), lastWeekEnd.Format(entities.DateFormat))
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:    todayAvg,
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
		Trend:    ClassifyTrend(thisWeek, lastWeek),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
