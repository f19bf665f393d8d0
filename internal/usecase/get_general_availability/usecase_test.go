package get_general_availability

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
	businessErr  error
	service      *domain.Service
	serviceErr   error
	staff        []*domain.Staff
	hours        []*domain.BusinessHours
	availability []*domain.StaffAvailability
}

func (s *stubScheduleRepo) GetBusiness(_ context.Context, _ int64) (*domain.Business, error) {
	return s.business, s.businessErr
}

func (s *stubScheduleRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, s.serviceErr
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

type stubReservationRepo struct {
	reservations []*domain.Reservation
}

func (s *stubReservationRepo) GetForBusinessRange(_ context.Context, _ int64, _, _ string) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// Понедельник 2 июня 2025; горизонт покрывает 4 понедельника
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newTestUseCase(schedule *stubScheduleRepo, reservations *stubReservationRepo) *UseCase {
	uc := NewUseCase(schedule, reservations, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func mondayOnlySchedule() *stubScheduleRepo {
	return &stubScheduleRepo{
		business: &domain.Business{ID: 10, Name: "Barbería Central"},
		service:  &domain.Service{ID: 5, BusinessID: 10, Name: "Corte", DurationMinutes: 60},
		staff:    []*domain.Staff{{ID: 1, BusinessID: 10, Name: "Ana"}},
		hours: []*domain.BusinessHours{
			{BusinessID: 10, Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "12:00", Active: true},
		},
		availability: []*domain.StaffAvailability{
			{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "09:00", EndTime: "12:00", Available: true},
		},
	}
}

func TestExecute_OpenMondayNoReservations(t *testing.T) {
	uc := newTestUseCase(mondayOnlySchedule(), &stubReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.HorizonDays)

	// Первый день горизонта — сегодняшний понедельник
	monday := resp.Days[0]
	assert.Equal(t, testNow.Format(domain.DateFormat), monday.Date.Format(domain.DateFormat))
	require.True(t, monday.Available)
	require.Len(t, monday.StaffBlocks, 1)
	assert.Equal(t, int64(1), monday.StaffBlocks[0].StaffID)
	assert.Equal(t, []Block{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}, monday.StaffBlocks[0].Blocks)

	// Вторник бизнес закрыт
	tuesday := resp.Days[1]
	assert.False(t, tuesday.Available)
	assert.Empty(t, tuesday.StaffBlocks)

	// Все понедельники горизонта доступны
	available := 0
	for _, day := range resp.Days {
		if day.Available {
			available++
		}
	}
	assert.Equal(t, 4, available)
}

func TestExecute_ReservationRemovesBlock(t *testing.T) {
	reservations := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{
				BusinessID: 10,
				StaffID:    1,
				Date:       testNow,
				StartTime:  "10:00",
				EndTime:    "11:00",
				Status:     domain.StatusReserved,
			},
		},
	}

	uc := newTestUseCase(mondayOnlySchedule(), reservations)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.NoError(t, err)

	monday := resp.Days[0]
	require.True(t, monday.Available)
	assert.Equal(t, []Block{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "12:00"},
	}, monday.StaffBlocks[0].Blocks)

	// Следующий понедельник не задет резервацией
	nextMonday := resp.Days[7]
	require.True(t, nextMonday.Available)
	assert.Len(t, nextMonday.StaffBlocks[0].Blocks, 3)
}

func TestExecute_NoStaffIsEmptyNotError(t *testing.T) {
	schedule := mondayOnlySchedule()
	schedule.staff = nil
	schedule.availability = nil

	uc := newTestUseCase(schedule, &stubReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.False(t, day.Available)
		assert.Empty(t, day.StaffBlocks)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(mondayOnlySchedule(), &stubReservationRepo{})

	first, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_NotFound(t *testing.T) {
	schedule := mondayOnlySchedule()
	schedule.business = nil
	schedule.businessErr = scheduleRepo.ErrBusinessNotFound

	uc := newTestUseCase(schedule, &stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 99, ServiceID: 5})
	require.ErrorIs(t, err, ErrBusinessNotFound)

	schedule = mondayOnlySchedule()
	schedule.service = nil
	schedule.serviceErr = scheduleRepo.ErrServiceNotFound

	uc = newTestUseCase(schedule, &stubReservationRepo{})

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 99})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(mondayOnlySchedule(), &stubReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 0, ServiceID: 5})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
