package api

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSWrapper sets CORS headers and answers preflight requests. With no
// configured origins every origin is allowed, matching the development
// default; in production the allowlist comes from configuration.
func CORSWrapper(allowedOrigins []string, next http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Content-Length",
			"Authorization",
			"X-Requested-With",
		},
		AllowCredentials: true,
	}

	// The allowlist echoes the matched origin rather than wildcarding, so
	// credentialed browser requests keep working.
	if len(allowedOrigins) == 0 {
		options.AllowOriginFunc = func(string) bool { return true }
	} else {
		options.AllowedOrigins = allowedOrigins
	}

	return cors.New(options).Handler(next)
}
