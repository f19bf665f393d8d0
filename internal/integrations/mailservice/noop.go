package mailservice

import "context"

// Noop клиент-заглушка для окружений без почтового сервиса
type Noop struct{}

// NewNoop создает клиент, который молча игнорирует отправку писем
func NewNoop() *Noop {
	return &Noop{}
}

// SendTemplate ничего не отправляет
func (*Noop) SendTemplate(_ context.Context, _ string, _ string, _ map[string]string) error {
	return nil
}
