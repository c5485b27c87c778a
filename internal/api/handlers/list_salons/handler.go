package list_salons

import (
	"net/http"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons
// Query params: city (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем city из query параметров (опционально)
	city := r.URL.Query().Get("city")
	var cityPtr *string
	if city != "" {
		cityPtr = &city
	}

	// Получаем список активных салонов
	result, err := h.service.List(r.Context(), cityPtr)
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - Salons listed successfully: count=%d", len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
