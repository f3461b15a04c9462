package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/vitalog/vitalog/internal/entities"
)

// MedicineReader provides read access to the medicine catalog.
type MedicineReader interface {
	GetMedicine(ctx context.Context, id string) (*entities.Medicine, error)
}

// DoseReminderTask announces that a medicine is due at the given hour.
// The medicine is re-read at processing time so reminders for deleted
// or completed courses are silently dropped.
type DoseReminderTask struct {
	MedicineID string `json:"medicine_id"`
	Hour       int    `json:"hour"`
}

// Config returns the queue configuration for dose reminder tasks.
func (t DoseReminderTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "dose_reminder",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// DoseReminderProcessor creates a processor function for DoseReminderTask.
func DoseReminderProcessor(medicines MedicineReader) backlite.QueueProcessor[DoseReminderTask] {
	return func(ctx context.Context, task DoseReminderTask) error {
		if medicines == nil {
			return fmt.Errorf("medicine reader not configured")
		}

		medicine, err := medicines.GetMedicine(ctx, task.MedicineID)
		if err != nil {
			return fmt.Errorf("load medicine for reminder: %w", err)
		}
		if medicine == nil {
			// Deleted since the reminder was scheduled; nothing to announce
			log.Printf("[TASK] Dropping reminder for missing medicine %s", task.MedicineID)
			return nil
		}

		if medicine.TotalDoses > 0 && medicine.DosesTaken >= medicine.TotalDoses {
			log.Printf("[TASK] Course complete for %s, skipping reminder", medicine.Name)
			return nil
		}

		log.Printf("[TASK] Reminder: take %s (%s) at %02d:00", medicine.Name, medicine.Dosage, task.Hour)
		return nil
	}
}

// NewDoseReminderQueue creates a backlite queue for dose reminder tasks.
func NewDoseReminderQueue(medicines MedicineReader) backlite.Queue {
	return backlite.NewQueue(DoseReminderProcessor(medicines))
}
