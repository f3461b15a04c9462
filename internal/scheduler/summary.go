package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/tasks"
)

// SummaryScheduler enqueues the end-of-day digest task on a cron schedule.
type SummaryScheduler struct {
	client   *tasks.Client
	schedule string

	cron       *cron.Cron
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewSummaryScheduler creates a new scheduler instance.
func NewSummaryScheduler(client *tasks.Client, schedule string) *SummaryScheduler {
	return &SummaryScheduler{
		client:   client,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *SummaryScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.enqueue()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily summary: %w", err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Summary scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *SummaryScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Summary scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *SummaryScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *SummaryScheduler) enqueue() {
	date := time.Now().Format(entities.DateFormat)
	if _, err := s.client.Add(tasks.DailySummaryTask{Date: date}).Save(); err != nil {
		log.Printf("Summary scheduler: failed to enqueue digest for %s: %v", date, err)
		return
	}
	log.Printf("Summary scheduler: enqueued digest for %s", date)
}
