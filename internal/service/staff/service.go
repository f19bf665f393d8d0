package staff

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rheareserve/booking-service/internal/domain"
	scheduleRepo "github.com/rheareserve/booking-service/internal/infra/storage/schedule"
	"github.com/rheareserve/booking-service/internal/service/staff/models"
)

// Service сервис выбора сотрудника для услуги
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetServiceStaff возвращает сотрудников, которые оказывают услугу и имеют
// хотя бы одно рабочее окно в недельном расписании. Сотрудник без связки
// staff_services или без пригодных окон в ответ не попадает
func (s *Service) GetServiceStaff(ctx context.Context, businessID, serviceID int64) (*models.StaffListResponse, error) {
	s.logger.Info("GetServiceStaff: fetching staff for business=%d, service=%d", businessID, serviceID)

	if businessID <= 0 || serviceID <= 0 {
		return nil, fmt.Errorf("%w: businessID and serviceID must be positive", ErrInvalidInput)
	}

	if _, err := s.scheduleRepo.GetBusiness(ctx, businessID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetServiceStaff: business=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetServiceStaff: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetServiceStaff - repository error: %v", ErrInternal, err)
	}

	if _, err := s.scheduleRepo.GetService(ctx, businessID, serviceID); err != nil {
		if errors.Is(err, scheduleRepo.ErrServiceNotFound) {
			s.logger.Warn("GetServiceStaff: service=%d not found in business=%d", serviceID, businessID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceStaff: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetServiceStaff - repository error: %v", ErrInternal, err)
	}

	staff, err := s.scheduleRepo.GetBusinessStaff(ctx, businessID)
	if err != nil {
		s.logger.Error("GetServiceStaff: failed to fetch staff for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetServiceStaff - repository error: %v", ErrInternal, err)
	}

	eligibleIDs, err := s.scheduleRepo.GetServiceStaffIDs(ctx, serviceID)
	if err != nil {
		s.logger.Error("GetServiceStaff: failed to fetch eligible staff for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetServiceStaff - repository error: %v", ErrInternal, err)
	}

	availability, err := s.scheduleRepo.GetStaffAvailability(ctx, businessID)
	if err != nil {
		s.logger.Error("GetServiceStaff: failed to fetch availability for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetServiceStaff - repository error: %v", ErrInternal, err)
	}

	eligible := make(map[int64]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}

	weekdays := make(map[int64]map[domain.Weekday]bool)
	for _, row := range availability {
		if !row.IsUsable() {
			continue
		}
		if weekdays[row.StaffID] == nil {
			weekdays[row.StaffID] = make(map[domain.Weekday]bool)
		}
		weekdays[row.StaffID][row.Weekday] = true
	}

	response := &models.StaffListResponse{Staff: make([]models.StaffResponse, 0, len(staff))}
	for _, member := range staff {
		if !eligible[member.ID] {
			continue
		}
		days := weekdays[member.ID]
		if len(days) == 0 {
			continue
		}
		response.Staff = append(response.Staff, models.StaffResponse{
			ID:       member.ID,
			Name:     member.Name,
			Weekdays: weekdayNames(days),
		})
	}

	s.logger.Info("GetServiceStaff: successfully fetched %d staff for service=%d", len(response.Staff), serviceID)
	return response, nil
}

// weekdayNames возвращает названия дней в порядке недели (с понедельника)
func weekdayNames(days map[domain.Weekday]bool) []string {
	ordered := make([]domain.Weekday, 0, len(days))
	for day := range days {
		ordered = append(ordered, day)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	names := make([]string, 0, len(ordered))
	for _, day := range ordered {
		names = append(names, day.String())
	}
	return names
}
