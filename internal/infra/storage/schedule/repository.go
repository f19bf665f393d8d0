package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/pkg/dbmetrics"
	"github.com/rheareserve/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий расписаний: бизнесы, услуги, сотрудники и их
// недельные окна. Для движка доступности эти данные read-only; мутации
// выполняются отдельным контуром настроек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusiness получает бизнес по ID
func (r *Repository) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusiness - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	err = executor.QueryRowContext(ctx, query, args...).Scan(&business.ID, &business.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusiness - scan business: %v", ErrScanRow, err)
	}

	return &business, nil
}

// GetService получает услугу по ID в рамках бизнеса
func (r *Repository) GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "name", "duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"id": serviceID, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BusinessID,
		&service.Name,
		&service.DurationMinutes,
		&service.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

// GetStaff получает сотрудника по ID в рамках бизнеса
// Связка staff-бизнес всегда разрешается здесь, а не берётся из запроса клиента
func (r *Repository) GetStaff(ctx context.Context, businessID, staffID int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "user_id", "name").
		From("staff").
		Where(squirrel.Eq{"id": staffID, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var staff domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&staff.ID,
		&staff.BusinessID,
		&staff.UserID,
		&staff.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan staff: %v", ErrScanRow, err)
	}

	return &staff, nil
}

// GetBusinessStaff получает всех сотрудников бизнеса
func (r *Repository) GetBusinessStaff(ctx context.Context, businessID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "user_id", "name").
		From("staff").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Staff, 0)
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(&staff.ID, &staff.BusinessID, &staff.UserID, &staff.Name); err != nil {
			return nil, fmt.Errorf("%w: GetBusinessStaff - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessStaff - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetBusinessHours получает активные строки недельного расписания бизнеса
// Метка дня недели парсится в enum на границе хранилища; строки с
// нераспознанной меткой пропускаются (данные расписания не валидируются,
// расчёт ведётся по тем строкам, которые удалось прочитать)
func (r *Repository) GetBusinessHours(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "weekday", "open_time", "close_time", "active").
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID, "active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		var (
			hours        domain.BusinessHours
			weekdayLabel string
		)
		if err := rows.Scan(&hours.ID, &hours.BusinessID, &weekdayLabel, &hours.OpenTime, &hours.CloseTime, &hours.Active); err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHours - scan row: %v", ErrScanRow, err)
		}

		weekday, err := domain.ParseWeekday(weekdayLabel)
		if err != nil {
			continue
		}
		hours.Weekday = weekday

		result = append(result, &hours)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetStaffAvailability получает доступные окна всех сотрудников бизнеса
func (r *Repository) GetStaffAvailability(ctx context.Context, businessID int64) ([]*domain.StaffAvailability, error) {
	return r.staffAvailability(ctx, squirrel.Eq{"business_id": businessID, "available": true})
}

// GetStaffAvailabilityByStaff получает доступные окна одного сотрудника бизнеса
func (r *Repository) GetStaffAvailabilityByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.StaffAvailability, error) {
	return r.staffAvailability(ctx, squirrel.Eq{"business_id": businessID, "staff_id": staffID, "available": true})
}

// GetServiceStaffIDs получает ID сотрудников, оказывающих услугу
func (r *Repository) GetServiceStaffIDs(ctx context.Context, serviceID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("staff_services").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetServiceStaffIDs - scan staff_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServiceStaffIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// staffAvailability общая выборка строк staff_availability
// Нераспознанные метки дня недели пропускаются, как и в GetBusinessHours
func (r *Repository) staffAvailability(ctx context.Context, where squirrel.Eq) ([]*domain.StaffAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "business_id", "weekday", "start_time", "end_time", "available").
		From("staff_availability").
		Where(where).
		OrderBy("staff_id ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: staffAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: staffAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.StaffAvailability, 0)
	for rows.Next() {
		var (
			availability domain.StaffAvailability
			weekdayLabel string
		)
		err := rows.Scan(
			&availability.ID,
			&availability.StaffID,
			&availability.BusinessID,
			&weekdayLabel,
			&availability.StartTime,
			&availability.EndTime,
			&availability.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: staffAvailability - scan row: %v", ErrScanRow, err)
		}

		weekday, err := domain.ParseWeekday(weekdayLabel)
		if err != nil {
			continue
		}
		availability.Weekday = weekday

		result = append(result, &availability)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: staffAvailability - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
