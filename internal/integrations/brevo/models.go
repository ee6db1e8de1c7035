package brevo

// ClientInfo получатель письма подтверждения
type ClientInfo struct {
	Name  string
	Email string
}

// AppointmentInfo данные записи для письма подтверждения
type AppointmentInfo struct {
	ServiceName string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
}

// sendEmailRequest тело запроса Brevo POST /v3/smtp/email
type sendEmailRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// errorResponse модель ошибки от Brevo
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
