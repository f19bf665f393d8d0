package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrRateLimited возвращается, когда локальный лимитер не пропустил запрос
	ErrRateLimited = errors.New("mailservice client: rate limit exceeded")
)
