package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	RequestID string
	Code      int
	Panic     *Panic
	Error     error

	errorMappers []func(error) (int, bool)
}

func (m *handlerMetadata) mapError(err error) (int, bool) {
	for _, mapper := range m.errorMappers {
		if code, ok := mapper(err); ok {
			return code, true
		}
	}
	return 0, false
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}

// RequestID returns the request correlation identifier set by WithRequestID.
func RequestID(ctx context.Context) (string, bool) {
	meta := getHandlerMetadata(ctx)
	if meta.RequestID == "" {
		return "", false
	}
	return meta.RequestID, true
}
