package create_reservation

import (
	"time"

	"github.com/rheareserve/booking-service/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	ClientID   int64            // ID клиента
	BusinessID int64            // ID бизнеса
	ServiceID  int64            // ID услуги
	StaffID    int64            // ID сотрудника
	Date       time.Time        // Дата резервации (без времени)
	StartTime  types.TimeString // Начало блока
	EndTime    types.TimeString // Конец блока
	Comment    *string          // Комментарий клиента (опционально)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID         int64            // ID созданной резервации
	ClientID   int64            // ID клиента
	BusinessID int64            // ID бизнеса
	ServiceID  int64            // ID услуги
	StaffID    int64            // ID сотрудника
	Date       time.Time        // Дата резервации
	StartTime  types.TimeString // Начало блока
	EndTime    types.TimeString // Конец блока
	Status     string           // Статус резервации

	// Денормализованные данные для ответа клиенту
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	StaffName    string  // Имя сотрудника
	Comment      *string // Комментарий клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
