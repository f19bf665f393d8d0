package get_day_blocks

import (
	"time"

	"github.com/rheareserve/booking-service/pkg/types"
)

// Request модель запроса блоков на конкретную дату
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата (без времени)
}

// Response модель ответа: плоский список свободных блоков дня
type Response struct {
	BusinessID int64        // ID бизнеса
	ServiceID  int64        // ID услуги
	Date       time.Time    // Запрошенная дата
	Blocks     []StaffBlock // Блоки всех подходящих сотрудников
}

// StaffBlock свободный блок с указанием владеющего сотрудника
type StaffBlock struct {
	StaffID   int64            // ID сотрудника
	StaffName string           // Имя сотрудника
	Start     types.TimeString // Время начала блока
	End       types.TimeString // Время конца блока
}
