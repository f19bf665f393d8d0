package get_staff_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rheareserve/booking-service/internal/domain"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
)

type stubScheduleRepo struct {
	business     *domain.Business
	service      *domain.Service
	staff        *domain.Staff
	staffErr     error
	hours        []*domain.BusinessHours
	availability []*domain.StaffAvailability
}

func (s *stubScheduleRepo) GetBusiness(_ context.Context, _ int64) (*domain.Business, error) {
	return s.business, nil
}

func (s *stubScheduleRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, nil
}

func (s *stubScheduleRepo) GetStaff(_ context.Context, _, _ int64) (*domain.Staff, error) {
	return s.staff, s.staffErr
}

func (s *stubScheduleRepo) GetBusinessHours(_ context.Context, _ int64) ([]*domain.BusinessHours, error) {
	return s.hours, nil
}

func (s *stubScheduleRepo) GetStaffAvailabilityByStaff(_ context.Context, _, _ int64) ([]*domain.StaffAvailability, error) {
	return s.availability, nil
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
}

func (s *stubReservationRepo) GetForStaffRange(_ context.Context, _ int64, _, _ string) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// Понедельник 2 июня 2025
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newTestUseCase(schedule *stubScheduleRepo, reservations *stubReservationRepo) *UseCase {
	uc := NewUseCase(schedule, reservations, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func testSchedule() *stubScheduleRepo {
	return &stubScheduleRepo{
		business: &domain.Business{ID: 10, Name: "Barbería Central"},
		service:  &domain.Service{ID: 5, BusinessID: 10, Name: "Corte", DurationMinutes: 60},
		staff:    &domain.Staff{ID: 1, BusinessID: 10, Name: "Ana"},
		hours: []*domain.BusinessHours{
			{BusinessID: 10, Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "18:00", Active: true},
		},
		availability: []*domain.StaffAvailability{
			{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "08:00", EndTime: "12:00", Available: true},
		},
	}
}

func TestExecute_WindowClippedByBusinessHours(t *testing.T) {
	uc := newTestUseCase(testSchedule(), &stubReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, StaffID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.HorizonDays)
	assert.Equal(t, "Ana", resp.StaffName)

	// Окно сотрудника 08:00-12:00 обрезано часами бизнеса до 09:00-12:00
	monday := resp.Days[0]
	require.True(t, monday.Available)
	assert.Equal(t, []Block{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}, monday.Blocks)

	// Закрытые дни недоступны
	assert.False(t, resp.Days[1].Available)
	assert.Empty(t, resp.Days[1].Blocks)
}

func TestExecute_MultipleWindowsSameWeekday(t *testing.T) {
	schedule := testSchedule()
	schedule.availability = []*domain.StaffAvailability{
		{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "09:00", EndTime: "11:00", Available: true},
		{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "14:00", EndTime: "16:00", Available: true},
	}

	uc := newTestUseCase(schedule, &stubReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, StaffID: 1})
	require.NoError(t, err)

	monday := resp.Days[0]
	assert.Equal(t, []Block{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "14:00", End: "15:00"},
		{Start: "15:00", End: "16:00"},
	}, monday.Blocks)
}

func TestExecute_ReservationRemovesBlock(t *testing.T) {
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				StaffID:   1,
				Date:      testNow,
				StartTime: "09:00",
				EndTime:   "10:00",
				Status:    domain.StatusReserved,
			},
		},
	}

	uc := newTestUseCase(testSchedule(), reservations)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, StaffID: 1})
	require.NoError(t, err)

	monday := resp.Days[0]
	assert.Equal(t, []Block{
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}, monday.Blocks)
}

func TestExecute_StaffNotInBusiness(t *testing.T) {
	schedule := testSchedule()
	schedule.staff = nil
	schedule.staffErr = scheduleRepo.ErrStaffNotFound

	uc := newTestUseCase(schedule, &stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, StaffID: 77})
	require.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testSchedule(), &stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, StaffID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
