package models

// StaffResponse сотрудник, доступный для записи на услугу
type StaffResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Weekdays []string `json:"weekdays"` // Дни недели с рабочими окнами
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}
