package get_day_blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rheareserve/booking-service/internal/domain"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	"github.com/rheareserve/booking-service/internal/slots"
)

// UseCase use case получения свободных блоков на одну дату.
//
// В отличие от общей доступности учитывает право сотрудников оказывать
// услугу (staff_services): сотрудники без связки с услугой блоков не дают.
// Ноль подходящих сотрудников — пустой список, не ошибка
type UseCase struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
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
		logger:          logger,
	}
}

// Execute выполняет use case получения блоков дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayBlocks: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayBlocks: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.scheduleRepo.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetDayBlocks: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetDayBlocks: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу
	service, err := uc.scheduleRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetDayBlocks: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetDayBlocks: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	response := &Response{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Blocks:     make([]StaffBlock, 0),
	}

	// 4. Часы бизнеса на этот день недели; закрытый день — пустой ответ
	hours, err := uc.scheduleRepo.GetBusinessHours(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetDayBlocks: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	weekday := domain.WeekdayFromTime(req.Date)
	dayHours, open := slots.HoursForWeekday(hours, weekday)
	if !open {
		uc.logger.Info("GetDayBlocks: business id=%d is closed on %s", req.BusinessID, weekday)
		return response, nil
	}

	// 5. Сотрудники, имеющие право оказывать услугу
	staff, err := uc.scheduleRepo.GetBusinessStaff(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetDayBlocks: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	eligibleIDs, err := uc.scheduleRepo.GetServiceStaffIDs(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetDayBlocks: failed to get eligible staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get eligible staff: %v", ErrInternal, err)
	}

	eligible := make(map[int64]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}

	// 6. Рабочие окна и занятость дня
	availability, err := uc.scheduleRepo.GetStaffAvailability(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetDayBlocks: failed to get staff availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff availability: %v", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.GetForBusinessDay(ctx, req.BusinessID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetDayBlocks: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	takenByStaff := make(map[int64][]*domain.Reservation)
	for _, r := range reservations {
		takenByStaff[r.StaffID] = append(takenByStaff[r.StaffID], r)
	}

	// 7. Плоский список блоков по сотрудникам
	for _, member := range staff {
		if !eligible[member.ID] {
			continue
		}

		windows := slots.WindowsForStaffDay(availability, member.ID, weekday)
		if len(windows) == 0 {
			continue
		}

		free, err := slots.FreeBlocks(dayHours, windows, takenByStaff[member.ID], service.DurationMinutes)
		if err != nil {
			uc.logger.Error("GetDayBlocks: failed to compute blocks for staff id=%d: %v", member.ID, err)
			return nil, fmt.Errorf("%w: failed to compute blocks: %v", ErrInternal, err)
		}

		for _, b := range free {
			response.Blocks = append(response.Blocks, StaffBlock{
				StaffID:   member.ID,
				StaffName: member.Name,
				Start:     b.Start,
				End:       b.End,
			})
		}
	}

	uc.logger.Info("GetDayBlocks: %d blocks for business=%d, service=%d, date=%s",
		len(response.Blocks), req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}
