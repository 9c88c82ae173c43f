package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/nordlicht/nordlicht/internal/ctxkeys"
	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/service"
)

// UserLoader fetches a user by id. Satisfied by repository.UserRepository.
type UserLoader interface {
	ByID(id string) (*model.User, error)
}

// AuthMiddleware checks for a JWT cookie and adds the user to the request
// context if valid. Requests without a valid session continue unauthenticated.
func AuthMiddleware(authService *service.AuthService, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.ByID(userID)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Security: keep the password hash out of the request context
			user.PasswordHash = nil

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects unauthenticated requests with a JSON 401.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "authentication required",
			})
			return
		}
		next.ServeHTTP(w, r)
	}
}
