package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var (
	defaultAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	defaultAllowedHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
)

// CORS is a no-op unless enabled; empty allow lists fall back to any origin and the API's methods.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsConfig := a.config.App.CORS

	if !corsConfig.Enable {
		return func(next http.Handler) http.Handler { return next }
	}

	options := cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}

	if len(options.AllowedOrigins) == 0 {
		options.AllowedOrigins = []string{"*"}
	}

	if len(options.AllowedMethods) == 0 {
		options.AllowedMethods = defaultAllowedMethods
	}

	if len(options.AllowedHeaders) == 0 {
		options.AllowedHeaders = defaultAllowedHeaders
	}

	return cors.Handler(options)
}
