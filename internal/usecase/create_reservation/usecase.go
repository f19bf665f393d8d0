package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rheareserve/booking-service/internal/domain"
	clientRepo "github.com/rheareserve/booking-service/internal/infra/storage/client"
	reservationRepo "github.com/rheareserve/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
)

// UseCase use case создания резервации.
//
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строк дня (FOR UPDATE); exclusion constraint в БД страхует
// инвариант на случай гонки за пределами транзакции. Письмо-подтверждение
// отправляется после коммита и на исход резервации не влияет
type UseCase struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	clientRepo      ClientRepository
	mailClient      MailClient
	mailTemplateID  string
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	clientRepo ClientRepository,
	mailClient MailClient,
	mailTemplateID string,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		mailClient:      mailClient,
		mailTemplateID:  mailTemplateID,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%d, business=%d, service=%d, staff=%d, date=%s, block=%s-%s",
		req.ClientID, req.BusinessID, req.ServiceID, req.StaffID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование бизнеса
	if _, err := uc.scheduleRepo.GetBusiness(ctx, req.BusinessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateReservation: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.scheduleRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Связка сотрудник-бизнес разрешается в БД: id из запроса не доверяем
	staff, err := uc.scheduleRepo.GetStaff(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateReservation: staff id=%d not found in business id=%d",
				req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 6. Длина блока должна совпадать с длительностью услуги
	if err := validateBlockLength(req, service); err != nil {
		uc.logger.Warn("CreateReservation: block validation failed: %v", err)
		return nil, err
	}

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Активные резервации сотрудника на день, с блокировкой строк
		taken, err := uc.reservationRepo.GetForStaffDay(txCtx, staff.ID, req.Date.Format(domain.DateFormat))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 7.2. Пересечение с любой активной резервацией — конфликт
		if hasOverlap(req, taken) {
			uc.logger.Warn("CreateReservation: block %s-%s already taken for staff id=%d on %s",
				req.StartTime, req.EndTime, staff.ID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 7.3. Вставляем резервацию
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			BusinessID:    req.BusinessID,
			StaffID:       staff.ID,
			ServiceID:     req.ServiceID,
			ClientID:      req.ClientID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        domain.StatusReserved,
			ClientComment: req.Comment,
		})
		if err != nil {
			// Проигрыш гонки на уровне БД — тот же конфликт для клиента
			if errors.Is(err, reservationRepo.ErrReservationConflict) {
				uc.logger.Warn("CreateReservation: storage rejected block %s-%s for staff id=%d: %v",
					req.StartTime, req.EndTime, staff.ID, err)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 8. Письмо-подтверждение после коммита, ошибки глотаем
	uc.notifyClient(ctx, result, service, staff)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		BusinessID:   result.BusinessID,
		ServiceID:    result.ServiceID,
		StaffID:      result.StaffID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		StaffName:    staff.Name,
		Comment:      result.ClientComment,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// notifyClient отправляет письмо-подтверждение
// Любая ошибка логируется и глотается: резервация уже создана
func (uc *UseCase) notifyClient(ctx context.Context, reservation *domain.Reservation, service *domain.Service, staff *domain.Staff) {
	client, err := uc.clientRepo.GetByID(ctx, reservation.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateReservation: client id=%d not found, skipping confirmation mail", reservation.ClientID)
			return
		}
		uc.logger.Error("CreateReservation: failed to get client id=%d for notification: %v", reservation.ClientID, err)
		return
	}

	if !client.HasEmail() {
		uc.logger.Info("CreateReservation: client id=%d has no email, skipping confirmation mail", client.ID)
		return
	}

	variables := map[string]string{
		"client_name":  client.Name,
		"service_name": service.Name,
		"staff_name":   staff.Name,
		"date":         reservation.Date.Format(domain.DateFormat),
		"start_time":   string(reservation.StartTime),
		"end_time":     string(reservation.EndTime),
	}

	if err := uc.mailClient.SendTemplate(ctx, client.Email, uc.mailTemplateID, variables); err != nil {
		uc.logger.Error("CreateReservation: confirmation mail failed for reservation id=%d: %v",
			reservation.ID, err)
		return
	}

	uc.logger.Info("CreateReservation: confirmation mail sent for reservation id=%d", reservation.ID)
}
