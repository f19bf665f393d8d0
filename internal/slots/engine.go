package slots

import (
	"github.com/rheareserve/booking-service/internal/domain"
)

// HoursForWeekday возвращает первую пригодную строку расписания бизнеса на день
// ok == false означает, что бизнес в этот день закрыт
func HoursForWeekday(rows []*domain.BusinessHours, day domain.Weekday) (*domain.BusinessHours, bool) {
	for _, row := range rows {
		if row.Weekday == day && row.IsUsable() {
			return row, true
		}
	}
	return nil, false
}

// WindowsForStaffDay отбирает пригодные рабочие окна сотрудника на день
// Несколько окон на один день допустимы и обрабатываются независимо
func WindowsForStaffDay(rows []*domain.StaffAvailability, staffID int64, day domain.Weekday) []*domain.StaffAvailability {
	windows := make([]*domain.StaffAvailability, 0)
	for _, row := range rows {
		if row.StaffID == staffID && row.Weekday == day && row.IsUsable() {
			windows = append(windows, row)
		}
	}
	return windows
}

// FreeBlocks вычисляет свободные блоки сотрудника на день.
//
// Для каждого рабочего окна сотрудника берется пересечение с часами работы
// бизнеса, окно нарезается на блоки длиной durationMinutes, и блоки,
// пересекающиеся с активными резервациями, выбрасываются. Окна, не
// пересекающиеся с часами бизнеса, не дают блоков.
//
// taken — резервации этого сотрудника на эту дату; отмененные игнорируются
func FreeBlocks(
	hours *domain.BusinessHours,
	windows []*domain.StaffAvailability,
	taken []*domain.Reservation,
	durationMinutes int,
) ([]Block, error) {
	free := make([]Block, 0)

	for _, window := range windows {
		start, end, ok := Intersect(hours.OpenTime, hours.CloseTime, window.StartTime, window.EndTime)
		if !ok {
			continue
		}

		blocks, err := GenerateBlocks(start, end, durationMinutes)
		if err != nil {
			return nil, err
		}

		for _, block := range blocks {
			if blockIsFree(block, taken) {
				free = append(free, block)
			}
		}
	}

	return free, nil
}

// blockIsFree проверяет, что блок не пересекается ни с одной активной резервацией
// Граничащие интервалы конфликтом не считаются
func blockIsFree(block Block, taken []*domain.Reservation) bool {
	for _, reservation := range taken {
		if !reservation.IsActive() {
			continue
		}
		if Overlaps(block.Start, block.End, reservation.StartTime, reservation.EndTime) {
			return false
		}
	}
	return true
}
