package middleware

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// CORS answers preflight requests and sets the CORS headers for allowed origins
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := lo.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := allowedOrigin(r.Header.Get("Origin"), allowedOrigins, allowAll); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowedOrigin returns the value of Access-Control-Allow-Origin for a request origin, or "" if it is not allowed
func allowedOrigin(origin string, allowedOrigins []string, allowAll bool) string {
	if origin == "" {
		return ""
	}
	if allowAll {
		return "*"
	}

	_, ok := lo.Find(allowedOrigins, func(allowed string) bool {
		return strings.EqualFold(origin, allowed)
	})
	if !ok {
		return ""
	}
	return origin
}
