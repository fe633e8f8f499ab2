package http

import (
	"net/http"

	"github.com/orbit-suite/orbit/pkg/log"
)

func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, healthPath)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"routeName":    getRouteName(r.Method, r.URL.Path),
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})
			if meta.RequestID != "" {
				requestLogger = requestLogger.WithField("requestID", meta.RequestID)
			}

			switch {
			case meta.Panic != nil:
				requestLogger.With(log.Fields{
					"message": meta.Panic.Message,
					"stack":   string(meta.Panic.Stacktrace),
				}).Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Error(r.Context(), "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Info(r.Context(), "request handled")
			}
		})
	})
}
