package create_reservation

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_reservation: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не принадлежит бизнесу
	ErrStaffNotFound = errors.New("create_reservation: staff not found")

	// ErrSlotTaken возвращается, когда выбранный блок уже занят
	// Различимая, исправимая клиентом ошибка: нужно выбрать другой блок
	ErrSlotTaken = errors.New("create_reservation: time block already taken")

	// ErrInvalidDate возвращается при дате резервации в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidBlock возвращается, когда границы блока некорректны или длина
	// блока не совпадает с длительностью услуги
	ErrInvalidBlock = errors.New("create_reservation: invalid time block")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
