package export_appointments

import (
	"net/http"

	"github.com/bethsalao/BS-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/appointments/export
// Отдает журнал записей как CSV вложение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	csv, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/export - Export generated, %d bytes", len(csv))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agendamentos.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
