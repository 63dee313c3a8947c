package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"utilibook/internal/domain"
)

type AppointmentSource interface {
	ListConfirmedForDate(ctx context.Context, date string) ([]domain.Appointment, error)
}

type Dispatcher interface {
	AppointmentReminder(ctx context.Context, appt *domain.Appointment) error
}

// Scheduler runs the day-before reminder job on a cron spec, by default every
// morning. Each run picks the confirmed appointments for tomorrow and pushes
// one reminder per appointment. Failures are logged and skipped; the job never
// aborts mid-batch.
type Scheduler struct {
	appointments AppointmentSource
	dispatcher   Dispatcher
	spec         string
	cron         *cron.Cron

	now func() time.Time
}

func NewScheduler(appointments AppointmentSource, dispatcher Dispatcher, spec string) *Scheduler {
	return &Scheduler{
		appointments: appointments,
		dispatcher:   dispatcher,
		spec:         spec,
		now:          time.Now,
	}
}

func (s *Scheduler) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, s.Run); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	log.Printf("reminder scheduler started, spec %q", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run executes one reminder batch. Exported so operators can trigger it
// out of schedule.
func (s *Scheduler) Run() {
	ctx := context.Background()
	tomorrow := s.now().UTC().AddDate(0, 0, 1).Format(domain.DateFormat)

	rows, err := s.appointments.ListConfirmedForDate(ctx, tomorrow)
	if err != nil {
		log.Printf("reminder: failed to list appointments for %s: %v", tomorrow, err)
		return
	}
	if len(rows) == 0 {
		return
	}

	log.Printf("reminder: dispatching %d reminders for %s", len(rows), tomorrow)
	sent := 0
	for i := range rows {
		if err := s.dispatcher.AppointmentReminder(ctx, &rows[i]); err != nil {
			log.Printf("reminder: dispatch failed for %s: %v", rows[i].AppointmentNumber, err)
			continue
		}
		sent++
	}
	log.Printf("reminder: %d/%d reminders dispatched for %s", sent, len(rows), tomorrow)
}
