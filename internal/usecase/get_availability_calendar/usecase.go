package get_availability_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/internal/infra/cache"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	"github.com/rheareserve/booking-service/internal/slots"
)

// UseCase use case календаря доступности: день доступен, если бизнес открыт
// в этот день недели и хотя бы одно рабочее окно сотрудника пересекается с
// окном бизнеса.
//
// Результат кешируется на TTL из конфигурации; ключ включает дату расчёта,
// чтобы смена суток инвалидировала кеш сама. Ошибки кеша деградируют до
// пересчёта и никогда не попадают к клиенту
type UseCase struct {
	scheduleRepo ScheduleRepository
	cache        Cache
	cacheTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	calendarCache Cache,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		cache:        calendarCache,
		cacheTTL:     cacheTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityCalendar: business=%d", req.BusinessID)

	// 1. Валидация входных данных
	if req.BusinessID <= 0 {
		uc.logger.Warn("GetAvailabilityCalendar: validation failed: businessID must be positive")
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 2. Пробуем кеш
	cacheKey := fmt.Sprintf("availability:calendar:%d:%s", req.BusinessID, startDate.Format(domain.DateFormat))
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var resp Response
		if err := json.Unmarshal(cached, &resp); err == nil {
			uc.logger.Info("GetAvailabilityCalendar: cache hit for business=%d", req.BusinessID)
			return &resp, nil
		}
		uc.logger.Warn("GetAvailabilityCalendar: failed to decode cached calendar: %v", err)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		uc.logger.Warn("GetAvailabilityCalendar: cache get failed: %v", err)
	}

	// 3. Проверяем существование бизнеса
	if _, err := uc.scheduleRepo.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailabilityCalendar: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailabilityCalendar: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Загружаем расписания
	hours, err := uc.scheduleRepo.GetBusinessHours(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailabilityCalendar: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	availability, err := uc.scheduleRepo.GetStaffAvailability(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailabilityCalendar: failed to get staff availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff availability: %v", ErrInternal, err)
	}

	// 5. Дневные флаги на горизонте
	resp := &Response{
		BusinessID: req.BusinessID,
		Days:       make([]Day, 0, domain.HorizonDays),
	}

	for i := 0; i < domain.HorizonDays; i++ {
		date := startDate.AddDate(0, 0, i)
		weekday := domain.WeekdayFromTime(date)

		available := false
		if dayHours, open := slots.HoursForWeekday(hours, weekday); open {
			available = anyWindowOverlaps(dayHours, availability, weekday)
		}

		resp.Days = append(resp.Days, Day{Date: date, Available: available})
	}

	// 6. Кладем в кеш, ошибка записи не мешает ответу
	if encoded, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, encoded, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetAvailabilityCalendar: cache set failed: %v", err)
		}
	}

	uc.logger.Info("GetAvailabilityCalendar: resolved %d days for business=%d", len(resp.Days), req.BusinessID)

	return resp, nil
}

// anyWindowOverlaps проверяет, что хотя бы одно пригодное окно сотрудника
// пересекается с окном бизнеса в этот день недели
func anyWindowOverlaps(hours *domain.BusinessHours, availability []*domain.StaffAvailability, day domain.Weekday) bool {
	for _, row := range availability {
		if row.Weekday != day || !row.IsUsable() {
			continue
		}
		if _, _, ok := slots.Intersect(hours.OpenTime, hours.CloseTime, row.StartTime, row.EndTime); ok {
			return true
		}
	}
	return false
}
