package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
	checkAvailability "github.com/avelanse/salon-booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgMissingDate      = "дата обязательна"
	msgMissingStartTime = "время начала обязательно"
	msgInvalidParams    = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgSalonNotFound    = "салон не найден"
	msgInvalidSlot      = "запрошенное время не является доступным слотом"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/availability
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем salonId из URL
	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Извлекаем date и startTime из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/availability - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /salons/{id}/availability - Missing start time: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(salonID, dateStr, startTimeStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/availability - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/availability - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidSlot):
			h.logger.Warn("GET /salons/{id}/availability - Invalid slot: salon_id=%d, start_time=%s",
				salonID, startTimeStr)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/availability - Invalid input: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/availability - Failed to check availability: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/availability - Availability checked: salon_id=%d, start_time=%s, remaining=%d",
		salonID, startTimeStr, result.RemainingSpots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
