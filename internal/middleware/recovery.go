package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

// Recovery turns a panic into a generic failure answer the client can only recover from by reloading.
// Nothing is retried.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("error", err),
						zap.Stack("stack"),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{Error: "something went wrong", Reload: true})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
