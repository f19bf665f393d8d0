package get_staff_availability

import (
	"time"

	"github.com/rheareserve/booking-service/pkg/types"
)

// Request модель запроса доступности конкретного сотрудника
type Request struct {
	BusinessID int64 // ID бизнеса
	ServiceID  int64 // ID услуги
	StaffID    int64 // ID сотрудника
}

// Response модель ответа: доступность сотрудника на горизонте в 28 дней
type Response struct {
	BusinessID int64 // ID бизнеса
	ServiceID  int64 // ID услуги
	StaffID    int64 // ID сотрудника
	StaffName  string
	Days       []Day // По одному элементу на каждый день горизонта
}

// Day доступность одного календарного дня
type Day struct {
	Date      time.Time // Дата дня
	Available bool      // Есть ли хотя бы один свободный блок
	Blocks    []Block   // Свободные блоки в порядке возрастания времени начала
}

// Block временной блок длиной в одну услугу
type Block struct {
	Start types.TimeString // Время начала блока
	End   types.TimeString // Время конца блока
}
