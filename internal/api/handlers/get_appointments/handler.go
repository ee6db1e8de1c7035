package get_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/bethsalao/BS-BookingService/internal/api/handlers"
	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/internal/service/appointments"
	"github.com/bethsalao/BS-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidStatus = "status inválido, esperado confirmed ou cancelled"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (опционально, YYYY-MM-DD), status (опционально),
// includeCancelled (опционально, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			h.logger.Warn("GET /appointments - Invalid date format: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &dateStr
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
