package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/bethsalao/BS-BookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

// Auth middleware для админских операций: сверяет X-Admin-Token с токеном
// из конфигурации. Публичный флоу бронирования аутентификации не требует.
func Auth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "token de administrador ausente")
				return
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "token de administrador inválido")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
