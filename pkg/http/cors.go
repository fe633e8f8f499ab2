package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

var ErrOriginNotAllowed = errors.New("origin not allowed")

const preflightMaxAgeSeconds = "600"

// WithCORS allows credentialed cross-origin calls from the explicitly listed
// origins. The allow-list is never a wildcard: responses echo the concrete
// origin, and requests from unlisted origins are rejected outright.
//
// No route registers the OPTIONS method, so mux dispatches preflight requests
// to the method-not-allowed handler. That handler must answer CORS as well,
// otherwise every preflight would come back 405 without the allow headers.
func WithCORS(allowedOrigins []string) ServerOption {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimSuffix(origin, "/")] = struct{}{}
	}

	mw := corsMiddleware(allowed)
	return func(router *mux.Router) {
		router.MethodNotAllowedHandler = mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}))
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func corsMiddleware(allowed map[string]struct{}) ServerMiddleware {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				handler.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[strings.TrimSuffix(origin, "/")]; !ok {
				meta := getHandlerMetadata(r.Context())
				meta.Code = http.StatusForbidden
				meta.Error = ErrOriginNotAllowed

				w.WriteHeader(http.StatusForbidden)
				return
			}

			header := w.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				header.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					header.Set("Access-Control-Allow-Headers", requested)
				}
				header.Set("Access-Control-Max-Age", preflightMaxAgeSeconds)

				w.WriteHeader(http.StatusNoContent)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
