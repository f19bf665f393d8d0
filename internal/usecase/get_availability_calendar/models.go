package get_availability_calendar

import "time"

// Request модель запроса календаря доступности
type Request struct {
	BusinessID int64 // ID бизнеса
}

// Response модель ответа: грубые дневные флаги на горизонте в 28 дней
// Резервации и длительность услуг не учитываются, это предфильтр для
// календарного виджета, а не список слотов
type Response struct {
	BusinessID int64 `json:"business_id"`
	Days       []Day `json:"days"`
}

// Day флаг доступности одного календарного дня
type Day struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}
