package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/carson-networks/cortex-bank-server/internal/auth"
)

const protectedPrefix = "/v1/"

// AuthWrapper enforces a valid bearer token on protected routes and attaches
// the verified claims to the request context. The token is taken from the
// Authorization header, falling back to the token cookie for browser clients.
func AuthWrapper(issuer *auth.Issuer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.HasPrefix(req.URL.Path, protectedPrefix) {
			next.ServeHTTP(w, req)
			return
		}

		tokenStr := bearerToken(req)
		if tokenStr == "" {
			if cookie, err := req.Cookie("token"); err == nil {
				tokenStr = cookie.Value
			}
		}

		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
			return
		}

		next.ServeHTTP(w, req.WithContext(auth.WithClaims(req.Context(), claims)))
	})
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
