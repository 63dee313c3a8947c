package booking

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

// Lifecycle transitions. This is the only code that writes status_id;
// everything else treats it as read-only.

// Complete moves a non-terminal appointment to COMPLETED and stamps
// completed_date. Optional notes overwrite the existing ones.
func (s *Service) Complete(ctx context.Context, id int64, notes *string) (*domain.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch appt.Status {
	case domain.StatusCompleted:
		return nil, ErrAlreadyCompleted
	case domain.StatusCancelled:
		return nil, ErrCannotCompleteCancelled
	}

	if err := s.appts.MarkCompleted(ctx, id, notes, s.now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost a race with another terminal transition.
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Cancel moves a non-terminal appointment to CANCELLED, storing the reason,
// then fires a best-effort cancellation notification. A dispatcher failure is
// logged and never reverts the cancellation.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Appointment, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch appt.Status {
	case domain.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case domain.StatusCompleted:
		return nil, ErrCannotCancelCompleted
	}

	if err := s.appts.MarkCancelled(ctx, id, reason, s.now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	cancelled, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.AppointmentCancelled(ctx, cancelled); err != nil {
			log.Printf("booking: cancellation notification failed for %s: %v", cancelled.AppointmentNumber, err)
		}
	}

	return cancelled, nil
}

// CancelPublic lets an unauthenticated client cancel its own appointment by
// (appointment number, client number).
func (s *Service) CancelPublic(ctx context.Context, appointmentNumber string, req PublicCancelRequest) (*domain.Appointment, error) {
	appt, err := s.Verify(ctx, appointmentNumber, req.ClientNumber)
	if err != nil {
		return nil, err
	}
	return s.Cancel(ctx, appt.ID, req.Reason)
}

// LogicalDelete is the administrative soft delete, independent of status.
func (s *Service) LogicalDelete(ctx context.Context, id int64) error {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !appt.IsActive && !appt.IsEnabled {
		return ErrAlreadyDeleted
	}
	if err := s.appts.LogicalDelete(ctx, id, s.now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlreadyDeleted
		}
		return err
	}
	return nil
}
