package create_salon

import (
	"errors"
	"net/http"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
	"github.com/avelanse/salon-booking-service/internal/api/middleware"
	"github.com/avelanse/salon-booking-service/internal/service/salons"
	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidSalonData   = "некорректные данные салона"
	msgInvalidSchedule    = "некорректная конфигурация расписания"
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

// Handle POST /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var data models.SalonData
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("POST /salons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем салон от имени аутентифицированного владельца
	serviceReq := &models.CreateSalonRequest{
		OwnerID:   ownerID,
		SalonData: data,
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, salons.ErrInvalidSchedule):
			h.logger.Warn("POST /salons - Invalid schedule: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, salons.ErrInvalidInput):
			h.logger.Warn("POST /salons - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidSalonData)

		default:
			h.logger.Error("POST /salons - Failed to create salon: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons - Salon created successfully: salon_id=%d, owner_id=%d", result.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
