package security

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
	UserIDHeader              = "X-User-ID"
	DefaultUserID             = "default"
)

// UserMiddleware : кладёт идентификатор пользователя из заголовка в контекст.
// Аутентификацию выполняет шлюз перед сервисом
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		userID := strings.TrimSpace(request.Header.Get(UserIDHeader))
		if userID == "" {
			userID = DefaultUserID
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, userID))
		next.ServeHTTP(writer, req)
	})
}

func UserIDFromContext(ctx context.Context) string {
	userID, ok := ctx.Value(UserContextKey).(string)
	if !ok || userID == "" {
		return DefaultUserID
	}
	return userID
}
