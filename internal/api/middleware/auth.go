package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avelanse/salon-booking-service/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя.
	// Проставляется API gateway после проверки токена.
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

type userIDContextKey struct{}

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его
// в контекст запроса. Запросы без валидного заголовка отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID аутентифицированного пользователя.
// Второе значение false, если запрос не проходил через Auth.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
