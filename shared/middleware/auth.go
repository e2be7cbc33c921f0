package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/itchan-auth/shared/jwt"
)

type TokenDecoder interface {
	DecodeToken(token string) (*jwt.Claims, error)
}

// Key to store the token claims in the request context
type key int

const ClaimsKey key = 0

// NeedAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the decoded claims in the request context.
func NeedAuth(decoder TokenDecoder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := decoder.DecodeToken(token)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaimsFromContext(r *http.Request) *jwt.Claims {
	claims, _ := r.Context().Value(ClaimsKey).(*jwt.Claims)
	return claims
}
