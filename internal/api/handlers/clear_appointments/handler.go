package clear_appointments

import (
	"net/http"

	"github.com/bethsalao/BS-BookingService/internal/api/handlers"
)

const msgCleared = "todos os agendamentos foram removidos"

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

// Handle DELETE /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		h.logger.Error("DELETE /appointments - Failed to clear journal: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments - Journal cleared")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgCleared})
}
