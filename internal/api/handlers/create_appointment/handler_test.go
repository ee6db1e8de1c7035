package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/bethsalao/BS-BookingService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	if f.executeFn == nil {
		panic("Execute not configured")
	}
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"clientName": "Maria Silva",
	"clientWhatsapp": "+5511999990000",
	"clientEmail": "maria@example.com",
	"serviceId": "svc-coloring",
	"date": "2026-09-08",
	"startTime": "09:30"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
			assert.Equal(t, "svc-coloring", req.ServiceID)
			assert.Equal(t, "09:30", req.StartTime.String())
			return &createAppointment.Response{
				ID:          "appt-1",
				ClientName:  req.ClientName,
				ServiceID:   req.ServiceID,
				ServiceName: "Coloração",
				Date:        req.Date,
				StartTime:   req.StartTime,
				EndTime:     "10:35",
				Status:      "confirmed",
			}, nil
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2026-09-08", resp.Date)
	assert.Equal(t, "10:35", resp.EndTime)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"salon closed", createAppointment.ErrSalonClosed, http.StatusBadRequest},
		{"invalid date", createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{"invalid time slot", createAppointment.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(uc, nopLogger{})

			rec := doRequest(h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{"unknownField": true}`).Code)

	// дата и время проверяются до вызова use case
	badDate := strings.Replace(validBody, "2026-09-08", "08/09/2026", 1)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, badDate).Code)

	badTime := strings.Replace(validBody, `"09:30"`, `"9h30"`, 1)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, badTime).Code)
}
