package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateWithDailyCap counts the branch's appointments for the day and inserts
// the new one in a single transaction. The ceiling counts every enabled,
// non-cancelled appointment: completing an appointment does not hand its
// capacity back, only cancelling does. The count is advisory under
// concurrency; the double-booking invariant itself rests on the partial unique
// index, whose violation is translated to ErrSlotTaken here.
func (r *AppointmentRepository) CreateWithDailyCap(ctx context.Context, appt *domain.Appointment, maxPerDay int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&domain.Appointment{}).
			Where("branch_id = ? AND date = ?", appt.BranchID, appt.Date).
			Where("status_id <> ?", int(domain.StatusCancelled)).
			Where("is_enabled = ?", true).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt >= int64(maxPerDay) {
			return ErrDailyCapReached
		}

		if err := tx.Create(appt).Error; err != nil {
			return translateCreateError(err)
		}
		return nil
	})
}

func translateCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "idx_no_double_booking" {
			return ErrSlotTaken
		}
		return ErrDuplicateNumber
	}

	// SQLite reports the violated columns instead of the index name.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || errors.Is(err, gorm.ErrDuplicatedKey) {
		if strings.Contains(msg, "appointment_number") {
			return ErrDuplicateNumber
		}
		return ErrSlotTaken
	}
	return err
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AppointmentRepository) GetByNumber(ctx context.Context, number string) (*domain.Appointment, error) {
	var a domain.Appointment
	tx := r.db.WithContext(ctx).Where("appointment_number = ?", number).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

// OccupiedTimes returns the times blocked for new bookings on the branch day:
// every enabled appointment whose status is non-terminal.
func (r *AppointmentRepository) OccupiedTimes(ctx context.Context, branchID int64, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("branch_id = ? AND date = ?", branchID, date).
		Where("status_id NOT IN ?", domain.TerminalStatusIDs).
		Where("is_enabled = ?", true).
		Order("time ASC").
		Pluck("time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *AppointmentRepository) MarkCompleted(ctx context.Context, id int64, notes *string, at time.Time) error {
	updates := map[string]any{
		"status_id":      int(domain.StatusCompleted),
		"completed_date": at,
		"updated_at":     at,
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	return r.updateGuarded(ctx, id, updates)
}

func (r *AppointmentRepository) MarkCancelled(ctx context.Context, id int64, reason string, at time.Time) error {
	return r.updateGuarded(ctx, id, map[string]any{
		"status_id":           int(domain.StatusCancelled),
		"cancellation_reason": reason,
		"updated_at":          at,
	})
}

// updateGuarded refuses to touch rows already in a terminal status, so a lost
// race between two staff actions cannot overwrite a terminal state.
func (r *AppointmentRepository) updateGuarded(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("id = ?", id).
		Where("status_id NOT IN ?", domain.TerminalStatusIDs).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentRepository) LogicalDelete(ctx context.Context, id int64, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("id = ?", id).
		Where("is_active = ? OR is_enabled = ?", true, true).
		Updates(map[string]any{
			"is_active":  false,
			"is_enabled": false,
			"updated_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type AppointmentFilter struct {
	BranchID *int64
	ClientID *int64
	Status   *domain.Status
	Date     *string
	Limit    int
	Offset   int
}

func (r *AppointmentRepository) List(ctx context.Context, f AppointmentFilter) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("is_enabled = ?", true)

	if f.BranchID != nil {
		q = q.Where("branch_id = ?", *f.BranchID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Status != nil {
		q = q.Where("status_id = ?", int(*f.Status))
	}
	if f.Date != nil {
		q = q.Where("date = ?", *f.Date)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []domain.Appointment
	if err := q.Order("date ASC, time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListConfirmedForDate feeds the reminder job.
func (r *AppointmentRepository) ListConfirmedForDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ? AND status_id = ?", date, int(domain.StatusConfirmed)).
		Where("is_enabled = ?", true).
		Order("branch_id ASC, time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
