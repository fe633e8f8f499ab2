package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	pkgstrings "github.com/orbit-suite/orbit/pkg/strings"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type RequestDataProvider[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("failed to parse request")

func ParseRequest[T any](from *http.Request, provider RequestDataProvider[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}
	result, err := provider(from)
	if err != nil {
		return result, fmt.Errorf("%w: %s", ErrParsingError, err.Error())
	}
	return result, nil
}

func PathParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func QueryParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func Header[T any](key string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("header with key %s not found", key)
		}
		return pkgstrings.ParseTypedValue[T](header)
	}
}

func Cookie(name string) RequestDataProvider[*http.Cookie] {
	return func(r *http.Request) (*http.Cookie, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			return nil, fmt.Errorf("cookie with name %s not found", name)
		}
		return cookie, nil
	}
}

func CookieValue[T any](name string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			var result T
			return result, fmt.Errorf("cookie with name %s not found", name)
		}
		return pkgstrings.ParseTypedValue[T](cookie.Value)
	}
}

func JSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("failed to decode json body: %w", err)
		}
		return body, nil
	}
}

// OptionalJSONBody decodes like JSONBody but treats an empty request body as
// the zero value, for endpoints where every field is optional.
func OptionalJSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		if err != nil {
			return body, fmt.Errorf("failed to decode json body: %w", err)
		}
		return body, nil
	}
}

type responseWriter struct {
	impl http.ResponseWriter

	jsonBody any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.jsonBody = data
	w.hasBody = true
	return w
}

func (w *responseWriter) write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)

	var bodyEncoded []byte
	if err == nil && w.hasBody {
		bodyEncoded, err = json.Marshal(w.jsonBody)
		if err != nil {
			err = fmt.Errorf("failed to encode body: %w", err)
			w.hasBody = false
		}
	}

	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	case err != nil:
		httpCode = http.StatusInternalServerError
		if mapped, ok := meta.mapError(err); ok {
			httpCode = mapped
		}
	}

	meta.Code = httpCode
	meta.Error = err

	if err == nil && w.hasBody {
		w.impl.Header().Set("Content-Type", "application/json")
		w.impl.WriteHeader(httpCode)
		_, _ = w.impl.Write(bodyEncoded)
		return
	}

	w.impl.WriteHeader(httpCode)
}

func (w *responseWriter) writePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.writePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.write(r.Context(), err)
	}
}
