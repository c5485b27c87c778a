package get_salon_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
	"github.com/avelanse/salon-booking-service/internal/api/middleware"
	"github.com/avelanse/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidFilter  = "некорректные параметры фильтрации"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgSalonNotFound  = "салон не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/bookings
// Query params: date (YYYY-MM-DD), status, includeCancelled - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем salonId из URL
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/bookings - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Формируем запрос к сервису из query параметров
	serviceReq, err := ToServiceRequest(actorID, salonID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /salons/{id}/bookings - Invalid filter params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	// Получаем бронирования салона (сервис проверит права владельца)
	result, err := h.service.GetSalonBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/bookings - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/bookings - Access denied: salon_id=%d, actor_id=%d", salonID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/bookings - Invalid filter: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /salons/{id}/bookings - Failed to get bookings: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/bookings - Bookings retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
