package api

// ErrorResponse представляет тело ошибки от сервера Gocial.
// Бэкенд в зависимости от эндпоинта заполняет либо error, либо message.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text возвращает человекочитаемое сообщение об ошибке,
// предпочитая поле error (его заполняют хендлеры списков).
func (e ErrorResponse) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
