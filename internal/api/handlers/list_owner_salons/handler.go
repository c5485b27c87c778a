package list_owner_salons

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
	"github.com/avelanse/salon-booking-service/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/salons - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/salons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Чужие салоны через этот эндпоинт смотреть нельзя
	// (в списке владельца есть и неактивные салоны)
	if actorID != userID {
		h.logger.Warn("GET /users/{userId}/salons - Access denied: user_id=%d, actor_id=%d", userID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем салоны владельца
	result, err := h.service.GetByOwner(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/salons - Failed to get salons: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/salons - Salons retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
