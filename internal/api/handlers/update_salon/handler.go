package update_salon

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
	"github.com/avelanse/salon-booking-service/internal/api/middleware"
	"github.com/avelanse/salon-booking-service/internal/service/salons"
	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/salons/{salonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var data models.SalonData
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("PUT /salons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем салон (сервис проверит права владельца)
	serviceReq := &models.UpdateSalonRequest{
		ActorID:   actorID,
		SalonData: data,
	}

	result, err := h.service.Update(r.Context(), salonID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, salons.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id} - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, salons.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id} - Access denied: salon_id=%d, actor_id=%d", salonID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, salons.ErrInvalidSchedule):
			h.logger.Warn("PUT /salons/{id} - Invalid schedule: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, salons.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id} - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSalonData)

		default:
			h.logger.Error("PUT /salons/{id} - Failed to update salon: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id} - Salon updated successfully: salon_id=%d, actor_id=%d", salonID, actorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
