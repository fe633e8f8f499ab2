package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

// WithErrorMapping maps handler errors to HTTP status codes for the routes
// the option is applied to. Unmapped errors are written as 500.
func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	mapper := func(err error) (int, bool) {
		for statusCode, errs := range statusCodes {
			for _, expected := range errs {
				if errors.Is(err, expected) {
					return statusCode, true
				}
			}
		}
		return 0, false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := getHandlerMetadata(r.Context())
			meta.errorMappers = append(meta.errorMappers, mapper)
			handler.ServeHTTP(w, r)
		})
	})
}

// WithRequestID takes the request correlation identifier from the given header
// or generates a new one, keeping it available via RequestID.
func WithRequestID(headerName string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerName)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			getHandlerMetadata(r.Context()).RequestID = requestID
			w.Header().Set(headerName, requestID)
			handler.ServeHTTP(w, r)
		})
	})
}
