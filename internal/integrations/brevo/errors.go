package brevo

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("brevo client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Brevo
	ErrInvalidResponse = errors.New("brevo client: invalid response")

	// ErrNotConfigured возвращается, когда отправка писем не настроена
	ErrNotConfigured = errors.New("brevo client: notifications are not configured")
)
