package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bethsalao/BS-BookingService/internal/api/handlers"
	"github.com/bethsalao/BS-BookingService/internal/service/services"
)

const (
	msgMissingServiceID = "o ID do serviço é obrigatório"
	msgServiceNotFound  = "serviço não encontrado"
	msgDeleted          = "serviço removido com sucesso"
)

type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceId"]
	if id == "" {
		h.logger.Warn("DELETE /services/{id} - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}
