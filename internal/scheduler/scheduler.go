// Package scheduler runs the periodic review reminder.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Settings controls when reminders go out. Hours are in the scheduler's location.
type Settings struct {
	ReminderHour          int // earliest hour of the day to remind
	NotificationStartHour int
	NotificationEndHour   int
	Location              *time.Location
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	source    DueSource
	settings  Settings
	now       func() time.Time

	mu       sync.Mutex
	lastSent map[string]string // learner -> date of the last reminder
}

// Notifier interface for sending notifications
type Notifier interface {
	SendReminder(learner string, count int) error
}

// DueSource lists learners and how many cards each has due
type DueSource interface {
	Learners(ctx context.Context) ([]string, error)
	DueCount(ctx context.Context, learner string) (int, error)
}

// New creates a new scheduler instance
func New(notifier Notifier, source DueSource, settings Settings) *Scheduler {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(settings.Location),
		notifier:  notifier,
		source:    source,
		settings:  settings,
		now:       time.Now,
		lastSent:  make(map[string]string),
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() error {
	// Hourly check for learners who need a reminder
	if _, err := s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders); err != nil {
		return err
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	s.CheckAndSendReminders(ctx)
}

// inWindow reports whether hour allows sending reminders
func (s *Scheduler) inWindow(hour int) bool {
	if hour < s.settings.ReminderHour {
		return false
	}
	start, end := s.settings.NotificationStartHour, s.settings.NotificationEndHour
	if start <= end {
		return hour >= start && hour <= end
	}
	// window wraps past midnight
	return hour >= start || hour <= end
}

// CheckAndSendReminders reminds every learner with due cards, at most once a
// day each. It returns how many reminders were sent.
func (s *Scheduler) CheckAndSendReminders(ctx context.Context) int {
	now := s.now().In(s.settings.Location)
	currentHour := now.Hour()

	if !s.inWindow(currentHour) {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, s.settings.NotificationStartHour, s.settings.NotificationEndHour)
		return 0
	}

	learners, err := s.source.Learners(ctx)
	if err != nil {
		log.Printf("Error getting learners for notification: %v", err)
		return 0
	}

	today := now.Format("2006-01-02")
	sent := 0
	for _, learner := range learners {
		if s.sentOn(learner) == today {
			continue
		}

		count, err := s.source.DueCount(ctx, learner)
		if err != nil {
			log.Printf("Error getting due cards for %s: %v", learner, err)
			continue
		}
		if count == 0 {
			continue
		}

		if err := s.notifier.SendReminder(learner, count); err != nil {
			log.Printf("Error sending reminder to %s: %v", learner, err)
			continue
		}
		s.markSent(learner, today)
		sent++
	}
	return sent
}

// RunManualCheck forces a reminder for one learner, ignoring the time window
func (s *Scheduler) RunManualCheck(ctx context.Context, learner string) error {
	count, err := s.source.DueCount(ctx, learner)
	if err != nil {
		return err
	}
	if count > 0 {
		return s.notifier.SendReminder(learner, count)
	}
	return nil
}

func (s *Scheduler) sentOn(learner string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSent[learner]
}

func (s *Scheduler) markSent(learner, day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSent[learner] = day
}
