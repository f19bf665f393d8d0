package staff

import (
	"context"
	"testing"

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
	staffIDs     []int64
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

func (s *stubScheduleRepo) GetServiceStaffIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.staffIDs, nil
}

func (s *stubScheduleRepo) GetStaffAvailability(_ context.Context, _ int64) ([]*domain.StaffAvailability, error) {
	return s.availability, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func window(staffID int64, day domain.Weekday) *domain.StaffAvailability {
	return &domain.StaffAvailability{
		StaffID:   staffID,
		Weekday:   day,
		StartTime: "09:00",
		EndTime:   "18:00",
		Available: true,
	}
}

func testRepo() *stubScheduleRepo {
	return &stubScheduleRepo{
		business: &domain.Business{ID: 10, Name: "Barbería Central"},
		service:  &domain.Service{ID: 5, BusinessID: 10, Name: "Corte de pelo", DurationMinutes: 30},
		staff: []*domain.Staff{
			{ID: 1, BusinessID: 10, Name: "María"},
			{ID: 2, BusinessID: 10, Name: "Luis"},
			{ID: 3, BusinessID: 10, Name: "Carmen"},
		},
	}
}

func TestGetServiceStaff(t *testing.T) {
	repo := testRepo()
	repo.staffIDs = []int64{1, 2}
	repo.availability = []*domain.StaffAvailability{
		window(1, domain.Wednesday),
		window(1, domain.Monday),
		window(3, domain.Friday), // Carmen не оказывает услугу
	}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetServiceStaff(context.Background(), 10, 5)
	require.NoError(t, err)

	// Luis связан с услугой, но не имеет рабочих окон
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(1), resp.Staff[0].ID)
	assert.Equal(t, "María", resp.Staff[0].Name)
	assert.Equal(t, []string{"lunes", "miércoles"}, resp.Staff[0].Weekdays)
}

func TestGetServiceStaff_UnavailableWindowsIgnored(t *testing.T) {
	repo := testRepo()
	repo.staffIDs = []int64{1}
	repo.availability = []*domain.StaffAvailability{
		{StaffID: 1, Weekday: domain.Monday, StartTime: "09:00", EndTime: "18:00", Available: false},
	}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetServiceStaff(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestGetServiceStaff_NotFound(t *testing.T) {
	repo := testRepo()
	repo.businessErr = scheduleRepo.ErrBusinessNotFound

	svc := NewService(repo, nopLogger{})

	_, err := svc.GetServiceStaff(context.Background(), 10, 5)
	require.ErrorIs(t, err, ErrBusinessNotFound)

	repo = testRepo()
	repo.serviceErr = scheduleRepo.ErrServiceNotFound

	svc = NewService(repo, nopLogger{})

	_, err = svc.GetServiceStaff(context.Background(), 10, 5)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetServiceStaff_InvalidInput(t *testing.T) {
	svc := NewService(testRepo(), nopLogger{})

	_, err := svc.GetServiceStaff(context.Background(), 0, 5)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetServiceStaff(context.Background(), 10, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
