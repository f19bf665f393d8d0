package domain

// DateFormat формат дат в API и хранилище
const DateFormat = "2006-01-02" // YYYY-MM-DD

// HorizonDays глубина расчёта доступности: скользящее окно в 4 недели,
// начиная с сегодняшнего дня включительно
const HorizonDays = 28

// MaxCommentLength максимальная длина комментария клиента к резервации
const MaxCommentLength = 500

// ActiveStatuses статусы, при которых резервация занимает время сотрудника
// Используется при поиске конфликтов
var ActiveStatuses = []ReservationStatus{
	StatusReserved,
	StatusPaid,
	StatusCompleted,
}
