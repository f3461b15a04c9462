package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/vitalog/vitalog/internal/analytics"
)

// SummaryProducer computes the day/week statistics for the summary log.
type SummaryProducer interface {
	SummaryStats(ctx context.Context) (*analytics.Summary, error)
	DailyInsights(ctx context.Context) ([]analytics.Insight, error)
}

// DailySummaryTask writes an end-of-day progress digest to the log.
type DailySummaryTask struct {
	Date string `json:"date"`
}

// Config returns the queue configuration for daily summary tasks.
func (t DailySummaryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "daily_summary",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// DailySummaryProcessor creates a processor function for DailySummaryTask.
func DailySummaryProcessor(producer SummaryProducer) backlite.QueueProcessor[DailySummaryTask] {
	return func(ctx context.Context, task DailySummaryTask) error {
		if producer == nil {
			return fmt.Errorf("summary producer not configured")
		}

		summary, err := producer.SummaryStats(ctx)
		if err != nil {
			return fmt.Errorf("daily summary stats: %w", err)
		}

		log.Printf("[TASK] Summary for %s: %.0fml water, %.0f calories, %.0f steps (trend: %s)",
			task.Date, summary.Today.Water, summary.Today.Calories, summary.Today.Steps, summary.Trend)

		insights, err := producer.DailyInsights(ctx)
		if err != nil {
			return fmt.Errorf("daily summary insights: %w", err)
		}
		for _, insight := range insights {
			log.Printf("[TASK] Insight (%s): %s", insight.Category, insight.Message)
		}
		return nil
	}
}

// NewDailySummaryQueue creates a backlite queue for daily summary tasks.
func NewDailySummaryQueue(producer SummaryProducer) backlite.Queue {
	return backlite.NewQueue(DailySummaryProcessor(producer))
}
