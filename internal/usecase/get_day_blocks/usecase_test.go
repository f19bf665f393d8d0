package get_day_blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rheareserve/booking-service/internal/domain"
)

type stubScheduleRepo struct {
	business     *domain.Business
	service      *domain.Service
	staff        []*domain.Staff
	hours        []*domain.BusinessHours
	availability []*domain.StaffAvailability
	eligibleIDs  []int64
}

func (s *stubScheduleRepo) GetBusiness(_ context.Context, _ int64) (*domain.Business, error) {
	return s.business, nil
}

func (s *stubScheduleRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, nil
}

func (s *stubScheduleRepo) GetBusinessStaff(_ context.Context, _ int64) ([]*domain.Staff, error) {
	return s.staff, nil
}

func (s *stubScheduleRepo) GetBusinessHours(_ context.Context, _ int64) ([]*domain.BusinessHours, error) {
	return s.hours, nil
}

func (s *stubScheduleRepo) GetStaffAvailability(_ context.Context, _ int64) ([]*domain.StaffAvailability, error) {
	return s.availability, nil
}

func (s *stubScheduleRepo) GetServiceStaffIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.eligibleIDs, nil
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
}

func (s *stubReservationRepo) GetForBusinessDay(_ context.Context, _ int64, _ string) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 2 июня 2025
var testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func testSchedule() *stubScheduleRepo {
	return &stubScheduleRepo{
		business: &domain.Business{ID: 10, Name: "Barbería Central"},
		service:  &domain.Service{ID: 5, BusinessID: 10, Name: "Corte", DurationMinutes: 60},
		staff: []*domain.Staff{
			{ID: 1, BusinessID: 10, Name: "Ana"},
			{ID: 2, BusinessID: 10, Name: "Luis"},
		},
		hours: []*domain.BusinessHours{
			{BusinessID: 10, Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "12:00", Active: true},
		},
		availability: []*domain.StaffAvailability{
			{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "09:00", EndTime: "12:00", Available: true},
			{StaffID: 2, BusinessID: 10, Weekday: domain.Monday, StartTime: "09:00", EndTime: "12:00", Available: true},
		},
		eligibleIDs: []int64{1},
	}
}

func TestExecute_EligibilityFiltersStaff(t *testing.T) {
	uc := NewUseCase(testSchedule(), &stubReservationRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: testMonday})
	require.NoError(t, err)

	// Luis не оказывает услугу и блоков не дает
	require.Len(t, resp.Blocks, 3)
	for _, b := range resp.Blocks {
		assert.Equal(t, int64(1), b.StaffID)
		assert.Equal(t, "Ana", b.StaffName)
	}
	assert.Equal(t, StaffBlock{StaffID: 1, StaffName: "Ana", Start: "09:00", End: "10:00"}, resp.Blocks[0])
	assert.Equal(t, StaffBlock{StaffID: 1, StaffName: "Ana", Start: "11:00", End: "12:00"}, resp.Blocks[2])
}

func TestExecute_ReservationRemovesBlock(t *testing.T) {
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				BusinessID: 10,
				StaffID:    1,
				Date:       testMonday,
				StartTime:  "10:00",
				EndTime:    "11:00",
				Status:     domain.StatusReserved,
			},
		},
	}

	uc := NewUseCase(testSchedule(), reservations, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: testMonday})
	require.NoError(t, err)

	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, StaffBlock{StaffID: 1, StaffName: "Ana", Start: "09:00", End: "10:00"}, resp.Blocks[0])
	assert.Equal(t, StaffBlock{StaffID: 1, StaffName: "Ana", Start: "11:00", End: "12:00"}, resp.Blocks[1])
}

func TestExecute_ZeroEligibleStaffIsEmptyNotError(t *testing.T) {
	schedule := testSchedule()
	schedule.eligibleIDs = nil

	uc := NewUseCase(schedule, &stubReservationRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: testMonday})
	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
}

func TestExecute_ClosedDayIsEmptyNotError(t *testing.T) {
	uc := NewUseCase(testSchedule(), &stubReservationRepo{}, nopLogger{})

	// Вторник: активной строки часов нет
	tuesday := testMonday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(testSchedule(), &stubReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.ErrorIs(t, err, ErrInvalidInput)
}
