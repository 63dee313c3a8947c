package holidays

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"utilibook/internal/domain"
)

type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) Create(ctx context.Context, h *domain.Holiday) error {
	args := m.Called(ctx, h)
	if h != nil {
		h.ID = 999
	}
	return args.Error(0)
}

func (m *MockHolidayRepository) GetByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) ExistsActive(ctx context.Context, date string, typ domain.HolidayType, branchID *int64) (bool, error) {
	args := m.Called(ctx, date, typ, branchID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHolidayRepository) FindActiveForDate(ctx context.Context, date string) ([]domain.Holiday, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindInRange(ctx context.Context, start, end string, branchID *int64) ([]domain.Holiday, error) {
	args := m.Called(ctx, start, end, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) Update(ctx context.Context, h *domain.Holiday) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHolidayRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBranchChecker struct {
	mock.Mock
}

func (m *MockBranchChecker) ExistsActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func fixedClock(service *Service) {
	service.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestCreateNationalHoliday_Success(t *testing.T) {
	repo := new(MockHolidayRepository)
	service := NewService(repo, new(MockBranchChecker))
	fixedClock(service)

	repo.On("ExistsActive", mock.Anything, "2026-12-25", domain.HolidayNational, (*int64)(nil)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h, err := service.CreateNationalHoliday(context.Background(), CreateHolidayRequest{
		Date: "2026-12-25",
		Name: "Christmas Day",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.HolidayNational, h.Type)
	assert.Nil(t, h.BranchID)
	repo.AssertExpectations(t)
}

func TestCreateHoliday_DateInPast(t *testing.T) {
	service := NewService(new(MockHolidayRepository), new(MockBranchChecker))
	fixedClock(service)

	_, err := service.CreateNationalHoliday(context.Background(), CreateHolidayRequest{
		Date: "2026-02-28",
		Name: "Too late",
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestCreateHoliday_InvalidDate(t *testing.T) {
	service := NewService(new(MockHolidayRepository), new(MockBranchChecker))
	fixedClock(service)

	_, err := service.CreateNationalHoliday(context.Background(), CreateHolidayRequest{
		Date: "25-12-2026",
		Name: "Bad format",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateHoliday_Duplicate(t *testing.T) {
	repo := new(MockHolidayRepository)
	service := NewService(repo, new(MockBranchChecker))
	fixedClock(service)

	repo.On("ExistsActive", mock.Anything, "2026-12-25", domain.HolidayNational, (*int64)(nil)).Return(true, nil)

	_, err := service.CreateNationalHoliday(context.Background(), CreateHolidayRequest{
		Date: "2026-12-25",
		Name: "Christmas Day",
	})
	assert.ErrorIs(t, err, ErrDuplicateHoliday)
}

func TestCreateLocalHoliday_BranchRequired(t *testing.T) {
	service := NewService(new(MockHolidayRepository), new(MockBranchChecker))
	fixedClock(service)

	_, err := service.CreateLocalHoliday(context.Background(), CreateHolidayRequest{
		Date: "2026-12-25",
		Name: "Branch closure",
	})
	assert.ErrorIs(t, err, ErrBranchRequired)
}

func TestCreateLocalHoliday_BranchNotFound(t *testing.T) {
	branches := new(MockBranchChecker)
	service := NewService(new(MockHolidayRepository), branches)
	fixedClock(service)

	branchID := int64(42)
	branches.On("ExistsActive", mock.Anything, branchID).Return(false, nil)

	_, err := service.CreateLocalHoliday(context.Background(), CreateHolidayRequest{
		Date:     "2026-12-25",
		Name:     "Branch closure",
		BranchID: &branchID,
	})
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestIsHoliday_LocalOtherBranchDoesNotApply(t *testing.T) {
	repo := new(MockHolidayRepository)
	service := NewService(repo, new(MockBranchChecker))

	otherBranch := int64(2)
	repo.On("FindActiveForDate", mock.Anything, "2026-09-14").Return([]domain.Holiday{
		{ID: 1, Date: "2026-09-14", Type: domain.HolidayLocal, BranchID: &otherBranch, Name: "Maintenance"},
	}, nil)

	h, err := service.IsHoliday(context.Background(), "2026-09-14", 1)

	assert.NoError(t, err)
	assert.Nil(t, h)
}

func TestIsHoliday_NationalAppliesEverywhere(t *testing.T) {
	repo := new(MockHolidayRepository)
	service := NewService(repo, new(MockBranchChecker))

	repo.On("FindActiveForDate", mock.Anything, "2026-12-25").Return([]domain.Holiday{
		{ID: 1, Date: "2026-12-25", Type: domain.HolidayNational, Name: "Christmas Day"},
	}, nil)

	h, err := service.IsHoliday(context.Background(), "2026-12-25", 7)

	assert.NoError(t, err)
	assert.NotNil(t, h)
	assert.Equal(t, "Christmas Day", h.Name)
}

func TestGetHolidaysInRange_InvalidRange(t *testing.T) {
	service := NewService(new(MockHolidayRepository), new(MockBranchChecker))

	_, err := service.GetHolidaysInRange(context.Background(), "2026-12-31", "2026-12-01", nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpdateHoliday_MovedDateRevalidated(t *testing.T) {
	repo := new(MockHolidayRepository)
	service := NewService(repo, new(MockBranchChecker))
	fixedClock(service)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Holiday{
		ID: 1, Date: "2026-12-25", Type: domain.HolidayNational, Name: "Christmas Day", Active: true,
	}, nil)

	past := "2026-01-01"
	_, err := service.UpdateHoliday(context.Background(), 1, UpdateHolidayRequest{Date: &past})
	assert.ErrorIs(t, err, ErrDateInPast)
}
