package mailservice

// sendRequest тело запроса на отправку шаблонного письма
type sendRequest struct {
	To         string            `json:"to"`
	From       string            `json:"from"`
	TemplateID string            `json:"template_id"`
	Variables  map[string]string `json:"variables"`
}

// sendResponse ответ сервиса почты
type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// ErrorResponse модель ошибки от сервиса почты
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
