package get_staff_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	"github.com/rheareserve/booking-service/internal/slots"
)

// UseCase use case получения доступности одного сотрудника по услуге.
//
// Эффективное окно дня — пересечение часов бизнеса и рабочего окна
// сотрудника, то же правило, что и в общей доступности. Исходная система
// на этом пути игнорировала часы бизнеса; расхождение намеренное, единое
// правило применяется везде
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

// Execute выполняет use case получения доступности сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStaffAvailability: business=%d, service=%d, staff=%d",
		req.BusinessID, req.ServiceID, req.StaffID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStaffAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.scheduleRepo.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetStaffAvailability: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetStaffAvailability: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.scheduleRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetStaffAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetStaffAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Связка сотрудник-бизнес разрешается в БД, а не берётся из запроса
	staff, err := uc.scheduleRepo.GetStaff(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetStaffAvailability: staff id=%d not found in business id=%d",
				req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetStaffAvailability: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 5. Расписания и резервации на весь горизонт
	hours, err := uc.scheduleRepo.GetBusinessHours(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetStaffAvailability: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	availability, err := uc.scheduleRepo.GetStaffAvailabilityByStaff(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		uc.logger.Error("GetStaffAvailability: failed to get staff availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff availability: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	startDate := dateOnly(now)
	endDate := startDate.AddDate(0, 0, domain.HorizonDays-1)

	reservations, err := uc.reservationRepo.GetForStaffRange(
		ctx,
		req.StaffID,
		startDate.Format(domain.DateFormat),
		endDate.Format(domain.DateFormat),
	)
	if err != nil {
		uc.logger.Error("GetStaffAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	taken := indexReservationsByDate(reservations)

	// 6. Обходим горизонт день за днем
	days := make([]Day, 0, domain.HorizonDays)
	for i := 0; i < domain.HorizonDays; i++ {
		date := startDate.AddDate(0, 0, i)
		weekday := domain.WeekdayFromTime(date)

		day := Day{Date: date, Available: false, Blocks: make([]Block, 0)}

		dayHours, open := slots.HoursForWeekday(hours, weekday)
		if open {
			windows := slots.WindowsForStaffDay(availability, req.StaffID, weekday)
			free, err := slots.FreeBlocks(dayHours, windows, taken[date.Format(domain.DateFormat)], service.DurationMinutes)
			if err != nil {
				uc.logger.Error("GetStaffAvailability: failed to resolve day %s: %v",
					date.Format(domain.DateFormat), err)
				return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
			}

			for _, b := range free {
				day.Blocks = append(day.Blocks, Block{Start: b.Start, End: b.End})
			}
			day.Available = len(day.Blocks) > 0
		}

		days = append(days, day)
	}

	uc.logger.Info("GetStaffAvailability: resolved %d days for staff=%d", len(days), req.StaffID)

	return &Response{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		StaffID:    staff.ID,
		StaffName:  staff.Name,
		Days:       days,
	}, nil
}

// indexReservationsByDate раскладывает резервации сотрудника по датам
func indexReservationsByDate(reservations []*domain.Reservation) map[string][]*domain.Reservation {
	index := make(map[string][]*domain.Reservation)
	for _, r := range reservations {
		dateKey := r.Date.Format(domain.DateFormat)
		index[dateKey] = append(index[dateKey], r)
	}
	return index
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
