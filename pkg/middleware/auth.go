package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/vyapari/pkg/auth"
	"github.com/shashiranjanraj/vyapari/pkg/response"
)

// Auth validates the bearer token and stores the authenticated user's ID in
// the request context. Handlers read it back with auth.UserID(ctx); nothing
// touches the store before this check passes.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := auth.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
