package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"utilibook/internal/domain"
)

func TestComplete_Success(t *testing.T) {
	s, d := newTestService()

	confirmed := &domain.Appointment{ID: 1, Status: domain.StatusConfirmed}
	completed := &domain.Appointment{ID: 1, Status: domain.StatusCompleted}

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(confirmed, nil).Once()
	d.appts.On("MarkCompleted", mock.Anything, int64(1), (*string)(nil), mock.Anything).Return(nil)
	d.appts.On("GetByID", mock.Anything, int64(1)).Return(completed, nil).Once()

	appt, err := s.Complete(context.Background(), 1, nil)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, appt.Status)
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, Status: domain.StatusCompleted,
	}, nil)

	_, err := s.Complete(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestComplete_CancelledAppointment(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, Status: domain.StatusCancelled,
	}, nil)

	_, err := s.Complete(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrCannotCompleteCancelled)
}

func TestCancel_Success(t *testing.T) {
	s, d := newTestService()

	confirmed := &domain.Appointment{ID: 1, Status: domain.StatusConfirmed}
	cancelled := &domain.Appointment{ID: 1, Status: domain.StatusCancelled, CancellationReason: "customer request"}

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(confirmed, nil).Once()
	d.appts.On("MarkCancelled", mock.Anything, int64(1), "customer request", mock.Anything).Return(nil)
	d.appts.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil).Once()
	d.notifs.On("AppointmentCancelled", mock.Anything, cancelled).Return(nil)

	appt, err := s.Cancel(context.Background(), 1, "customer request")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, appt.Status)
	d.notifs.AssertExpectations(t)
}

func TestCancel_ReasonRequired(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Cancel(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, Status: domain.StatusCancelled,
	}, nil)

	_, err := s.Cancel(context.Background(), 1, "again")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, Status: domain.StatusCompleted,
	}, nil)

	_, err := s.Cancel(context.Background(), 1, "too late")
	assert.ErrorIs(t, err, ErrCannotCancelCompleted)
}

func TestCancel_NotificationFailureDoesNotPropagate(t *testing.T) {
	s, d := newTestService()

	confirmed := &domain.Appointment{ID: 1, Status: domain.StatusConfirmed}
	cancelled := &domain.Appointment{ID: 1, Status: domain.StatusCancelled}

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(confirmed, nil).Once()
	d.appts.On("MarkCancelled", mock.Anything, int64(1), "reason", mock.Anything).Return(nil)
	d.appts.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil).Once()
	d.notifs.On("AppointmentCancelled", mock.Anything, cancelled).Return(errors.New("sms gateway down"))

	appt, err := s.Cancel(context.Background(), 1, "reason")

	assert.NoError(t, err)
	assert.NotNil(t, appt)
}

func TestCancelPublic_VerifiesOwnership(t *testing.T) {
	s, d := newTestService()

	appt := &domain.Appointment{ID: 5, ClientID: 1, Status: domain.StatusConfirmed, AppointmentNumber: "APT-20260309-AAAA1111"}
	cancelled := &domain.Appointment{ID: 5, ClientID: 1, Status: domain.StatusCancelled, AppointmentNumber: "APT-20260309-AAAA1111"}

	d.appts.On("GetByNumber", mock.Anything, "APT-20260309-AAAA1111").Return(appt, nil)
	d.clients.On("GetByNumber", mock.Anything, "CL-000001").Return(&domain.Client{ID: 1}, nil)
	d.appts.On("GetByID", mock.Anything, int64(5)).Return(appt, nil).Once()
	d.appts.On("MarkCancelled", mock.Anything, int64(5), "moved away", mock.Anything).Return(nil)
	d.appts.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil).Once()
	d.notifs.On("AppointmentCancelled", mock.Anything, cancelled).Return(nil)

	result, err := s.CancelPublic(context.Background(), "APT-20260309-AAAA1111", PublicCancelRequest{
		ClientNumber: "CL-000001",
		Reason:       "moved away",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
}

func TestCancelPublic_WrongClient(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByNumber", mock.Anything, "APT-20260309-AAAA1111").Return(&domain.Appointment{
		ID: 5, ClientID: 1,
	}, nil)
	d.clients.On("GetByNumber", mock.Anything, "CL-000002").Return(&domain.Client{ID: 2}, nil)

	_, err := s.CancelPublic(context.Background(), "APT-20260309-AAAA1111", PublicCancelRequest{
		ClientNumber: "CL-000002",
		Reason:       "not mine",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestLogicalDelete_SecondCallFails(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, IsActive: false, IsEnabled: false,
	}, nil)

	err := s.LogicalDelete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyDeleted)
}

func TestLogicalDelete_Success(t *testing.T) {
	s, d := newTestService()

	d.appts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Appointment{
		ID: 1, IsActive: true, IsEnabled: true, Status: domain.StatusConfirmed,
	}, nil)
	d.appts.On("LogicalDelete", mock.Anything, int64(1), mock.Anything).Return(nil)

	err := s.LogicalDelete(context.Background(), 1)
	assert.NoError(t, err)
	d.appts.AssertExpectations(t)
}
