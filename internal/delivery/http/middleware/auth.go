package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	h "eventregistration/internal/delivery/http/helpers"
)

// RequireAdminToken returns a wrapper that compares the {token} path value with the
// configured admin token in constant time. On mismatch it responds with 401 and does not call next.
func RequireAdminToken(adminToken string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := r.PathValue("token")
			if adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				logger.WarnContext(r.Context(), "admin token rejected", "remote_addr", r.RemoteAddr)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid admin token")
				return
			}
			next(w, r)
		}
	}
}
