package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент транзакционной почты Brevo.
// Письмо подтверждения — best-effort: вызывающая сторона логирует ошибку
// и продолжает, бронирование от исхода отправки не зависит.
type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Brevo
func NewClient(baseURL, apiKey, senderName, senderEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет клиенту письмо подтверждения записи
func (c *Client) SendConfirmation(ctx context.Context, client ClientInfo, appt AppointmentInfo) error {
	if c.apiKey == "" || c.senderEmail == "" {
		return ErrNotConfigured
	}

	payload := sendEmailRequest{
		Sender:      emailAddress{Name: c.senderName, Email: c.senderEmail},
		To:          []emailAddress{{Name: client.Name, Email: client.Email}},
		Subject:     fmt.Sprintf("Agendamento Confirmado - %s", c.senderName),
		HTMLContent: confirmationHTML(client, appt),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v3/smtp/email"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Info("brevo: confirmation sent to %s for %s %s", client.Email, appt.Date, appt.Time)
		return nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}

// confirmationHTML собирает тело письма подтверждения
func confirmationHTML(client ClientInfo, appt AppointmentInfo) string {
	return fmt.Sprintf(`
<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: auto; border: 1px solid #eee; padding: 20px;">
  <h1 style="color: #db2777; text-align: center;">Olá, %s!</h1>
  <p style="text-align: center; font-size: 16px;">Seu agendamento foi realizado com sucesso.</p>
  <div style="background: #fdf2f8; padding: 20px; border-radius: 10px; border: 1px solid #fbcfe8; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>Serviço:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Data:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Horário:</strong> %s</p>
  </div>
  <p style="text-align: center; font-weight: bold; color: #db2777;">Aguardamos você no nosso salão!</p>
  <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;" />
  <p style="font-size: 12px; color: #666; text-align: center;">
    Em caso de cancelamento ou reagendamento, por favor nos avise com pelo menos 2 dias de antecedência.
  </p>
</div>`,
		client.Name, appt.ServiceName, appt.Date, appt.Time)
}
