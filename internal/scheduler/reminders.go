package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vitalog/vitalog/internal/database"
	"github.com/vitalog/vitalog/internal/tasks"
)

// ReminderScheduler periodically checks which medicines are due at the
// current hour and enqueues a reminder task for each. It only reads the
// catalog; dose counters change when the user confirms an intake.
type ReminderScheduler struct {
	store    *database.Store
	client   *tasks.Client
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isChecking bool
	cancelFunc context.CancelFunc
}

// NewReminderScheduler creates a new scheduler instance.
func NewReminderScheduler(store *database.Store, client *tasks.Client, schedule string) *ReminderScheduler {
	return &ReminderScheduler{
		store:    store,
		client:   client,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder check: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Reminder scheduler: started with schedule '%s'", s.schedule)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Reminder scheduler: stopped")
}

// RunNow triggers an immediate check.
func (s *ReminderScheduler) RunNow() {
	go s.runCheck()
}

// IsRunning returns whether the scheduler is active.
func (s *ReminderScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next check will occur.
func (s *ReminderScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runCheck enqueues reminder tasks for every medicine due this hour.
func (s *ReminderScheduler) runCheck() {
	s.mu.Lock()
	if s.isChecking {
		s.mu.Unlock()
		log.Printf("Reminder check: skipped (already running)")
		return
	}
	s.isChecking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isChecking = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	medicines, err := s.store.ListMedicines(ctx)
	if err != nil {
		log.Printf("Reminder check: failed to list medicines: %v", err)
		return
	}

	hour := time.Now().Hour()
	var enqueued int
	for _, medicine := range medicines {
		if !dueAtHour(medicine.Times, hour) {
			continue
		}
		if medicine.TotalDoses > 0 && medicine.DosesTaken >= medicine.TotalDoses {
			continue
		}
		_, err := s.client.Add(tasks.DoseReminderTask{MedicineID: medicine.ID, Hour: hour}).Save()
		if err != nil {
			log.Printf("Reminder check: failed to enqueue reminder for %s: %v", medicine.Name, err)
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		log.Printf("Reminder check: enqueued %d reminders for %02d:00", enqueued, hour)
	}
}

func dueAtHour(times []int, hour int) bool {
	for _, t := range times {
		if t == hour {
			return true
		}
	}
	return false
}
