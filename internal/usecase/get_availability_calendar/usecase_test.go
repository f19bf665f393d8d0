package get_availability_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/internal/infra/cache"
)

type stubScheduleRepo struct {
	business     *domain.Business
	hours        []*domain.BusinessHours
	availability []*domain.StaffAvailability
	calls        int
}

func (s *stubScheduleRepo) GetBusiness(_ context.Context, _ int64) (*domain.Business, error) {
	return s.business, nil
}

func (s *stubScheduleRepo) GetBusinessHours(_ context.Context, _ int64) ([]*domain.BusinessHours, error) {
	s.calls++
	return s.hours, nil
}

func (s *stubScheduleRepo) GetStaffAvailability(_ context.Context, _ int64) ([]*domain.StaffAvailability, error) {
	return s.availability, nil
}

type memoryCache struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// Понедельник 2 июня 2025
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func testSchedule() *stubScheduleRepo {
	return &stubScheduleRepo{
		business: &domain.Business{ID: 10, Name: "Barbería Central"},
		hours: []*domain.BusinessHours{
			{BusinessID: 10, Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "18:00", Active: true},
			{BusinessID: 10, Weekday: domain.Tuesday, OpenTime: "09:00", CloseTime: "18:00", Active: true},
		},
		availability: []*domain.StaffAvailability{
			// Понедельник: окно пересекается с часами бизнеса
			{StaffID: 1, BusinessID: 10, Weekday: domain.Monday, StartTime: "10:00", EndTime: "14:00", Available: true},
			// Вторник: окно целиком вне часов бизнеса
			{StaffID: 1, BusinessID: 10, Weekday: domain.Tuesday, StartTime: "19:00", EndTime: "22:00", Available: true},
		},
	}
}

func newTestUseCase(schedule *stubScheduleRepo, calendarCache Cache) *UseCase {
	uc := NewUseCase(schedule, calendarCache, time.Minute, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_DayFlags(t *testing.T) {
	uc := newTestUseCase(testSchedule(), newMemoryCache())

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.HorizonDays)

	// Понедельник: открыт и есть пересекающееся окно
	assert.True(t, resp.Days[0].Available)
	// Вторник: открыт, но окно сотрудника не пересекается с часами
	assert.False(t, resp.Days[1].Available)
	// Среда: бизнес закрыт
	assert.False(t, resp.Days[2].Available)
}

func TestExecute_SecondCallServedFromCache(t *testing.T) {
	schedule := testSchedule()
	memory := newMemoryCache()
	uc := newTestUseCase(schedule, memory)

	first, err := uc.Execute(context.Background(), &Request{BusinessID: 10})
	require.NoError(t, err)
	require.Len(t, memory.setKeys, 1)
	assert.Contains(t, memory.setKeys[0], "availability:calendar:10:2025-06-02")

	second, err := uc.Execute(context.Background(), &Request{BusinessID: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, schedule.calls)
	require.Len(t, second.Days, len(first.Days))
	for i := range first.Days {
		assert.Equal(t, first.Days[i].Available, second.Days[i].Available)
		assert.True(t, first.Days[i].Date.Equal(second.Days[i].Date))
	}
}

func TestExecute_CacheFailureDegradesToRecompute(t *testing.T) {
	schedule := testSchedule()
	memory := newMemoryCache()
	memory.getErr = errors.New("redis down")
	memory.setErr = errors.New("redis down")

	uc := newTestUseCase(schedule, memory)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10})
	require.NoError(t, err)
	assert.True(t, resp.Days[0].Available)
	assert.Equal(t, 1, schedule.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testSchedule(), newMemoryCache())

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
