package slots

import (
	"errors"
	"fmt"

	"github.com/rheareserve/booking-service/pkg/types"
)

// Block is a candidate time block of exactly one service duration.
// Blocks have no identity beyond their boundaries; they either get
// discarded with the response or promoted into a reservation.
type Block struct {
	Start types.TimeString
	End   types.TimeString
}

// ErrInvalidDuration возвращается при неположительной длительности блока
var ErrInvalidDuration = errors.New("slots: duration must be positive")

// GenerateBlocks разбивает окно [windowStart, windowEnd) на последовательные
// блоки ровно по durationMinutes каждый, в порядке возрастания времени начала.
//
// Хвост окна короче полной длительности отбрасывается: окно 09:00-09:50 при
// длительности 30 минут дает единственный блок 09:00-09:30. Это повторяет
// поведение исходной системы и не является ошибкой.
//
// Вырожденное окно (start >= end) дает пустой результат: отсутствие
// доступности — нормальный ответ, а не ошибка.
func GenerateBlocks(windowStart, windowEnd types.TimeString, durationMinutes int) ([]Block, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}

	blocks := make([]Block, 0)
	cursor := windowStart

	for cursor.IsBefore(windowEnd) {
		blockEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Блок вышел за пределы суток — дальше блоков быть не может
			break
		}
		if blockEnd.IsAfter(windowEnd) {
			break
		}

		blocks = append(blocks, Block{Start: cursor, End: blockEnd})
		cursor = blockEnd
	}

	return blocks, nil
}

// Intersect возвращает пересечение двух окон (максимум начал, минимум концов)
// ok == false, если окна не пересекаются
func Intersect(aStart, aEnd, bStart, bEnd types.TimeString) (start, end types.TimeString, ok bool) {
	start = types.Max(aStart, bStart)
	end = types.Min(aEnd, bEnd)
	return start, end, start.IsBefore(end)
}

// Overlaps проверяет строгое пересечение интервалов [aStart, aEnd) и [bStart, bEnd)
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}
