package get_general_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	"github.com/rheareserve/booking-service/internal/slots"
)

// UseCase use case получения общей доступности бизнеса по услуге
// Для каждого дня горизонта считает свободные блоки каждого сотрудника;
// день доступен, если хотя бы у одного сотрудника остался хотя бы один блок
type UseCase struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения общей доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetGeneralAvailability: business=%d, service=%d", req.BusinessID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetGeneralAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.scheduleRepo.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetGeneralAvailability: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetGeneralAvailability: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (длительность — канонический размер блока)
	service, err := uc.scheduleRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetGeneralAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetGeneralAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Загружаем расписания одним заходом на весь горизонт
	staff, err := uc.scheduleRepo.GetBusinessStaff(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetGeneralAvailability: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	hours, err := uc.scheduleRepo.GetBusinessHours(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetGeneralAvailability: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	availability, err := uc.scheduleRepo.GetStaffAvailability(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetGeneralAvailability: failed to get staff availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff availability: %v", ErrInternal, err)
	}

	// 5. Резервации всего горизонта одним запросом, индексируем по дате и сотруднику
	now := uc.timeProvider.Now()
	startDate := dateOnly(now)
	endDate := startDate.AddDate(0, 0, domain.HorizonDays-1)

	reservations, err := uc.reservationRepo.GetForBusinessRange(
		ctx,
		req.BusinessID,
		startDate.Format(domain.DateFormat),
		endDate.Format(domain.DateFormat),
	)
	if err != nil {
		uc.logger.Error("GetGeneralAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	taken := indexReservations(reservations)

	// 6. Обходим горизонт день за днем
	days := make([]Day, 0, domain.HorizonDays)
	for i := 0; i < domain.HorizonDays; i++ {
		date := startDate.AddDate(0, 0, i)
		day, err := uc.resolveDay(date, staff, hours, availability, taken, service.DurationMinutes)
		if err != nil {
			uc.logger.Error("GetGeneralAvailability: failed to resolve day %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
		}
		days = append(days, day)
	}

	uc.logger.Info("GetGeneralAvailability: resolved %d days for business=%d, service=%d",
		len(days), req.BusinessID, req.ServiceID)

	return &Response{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Days:       days,
	}, nil
}

// resolveDay вычисляет доступность одного дня
func (uc *UseCase) resolveDay(
	date time.Time,
	staff []*domain.Staff,
	hours []*domain.BusinessHours,
	availability []*domain.StaffAvailability,
	taken map[string]map[int64][]*domain.Reservation,
	durationMinutes int,
) (Day, error) {
	day := Day{
		Date:        date,
		Available:   false,
		StaffBlocks: make([]StaffBlocks, 0),
	}

	weekday := domain.WeekdayFromTime(date)

	// Бизнес закрыт в этот день недели
	dayHours, open := slots.HoursForWeekday(hours, weekday)
	if !open {
		return day, nil
	}

	dateKey := date.Format(domain.DateFormat)

	for _, member := range staff {
		windows := slots.WindowsForStaffDay(availability, member.ID, weekday)
		if len(windows) == 0 {
			continue
		}

		free, err := slots.FreeBlocks(dayHours, windows, taken[dateKey][member.ID], durationMinutes)
		if err != nil {
			return day, err
		}
		if len(free) == 0 {
			continue
		}

		day.StaffBlocks = append(day.StaffBlocks, StaffBlocks{
			StaffID:   member.ID,
			StaffName: member.Name,
			Blocks:    toBlocks(free),
		})
	}

	day.Available = len(day.StaffBlocks) > 0
	return day, nil
}

// indexReservations раскладывает резервации по дате и сотруднику
func indexReservations(reservations []*domain.Reservation) map[string]map[int64][]*domain.Reservation {
	index := make(map[string]map[int64][]*domain.Reservation)
	for _, r := range reservations {
		dateKey := r.Date.Format(domain.DateFormat)
		if index[dateKey] == nil {
			index[dateKey] = make(map[int64][]*domain.Reservation)
		}
		index[dateKey][r.StaffID] = append(index[dateKey][r.StaffID], r)
	}
	return index
}

// toBlocks конвертирует блоки движка в модель ответа
func toBlocks(free []slots.Block) []Block {
	blocks := make([]Block, len(free))
	for i, b := range free {
		blocks[i] = Block{Start: b.Start, End: b.End}
	}
	return blocks
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
