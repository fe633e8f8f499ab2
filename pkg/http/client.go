package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/orbit-suite/orbit/pkg/log"
)

type (
	Destination string

	ClientOption func(*clientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	clientImpl struct {
		destinationName string
		restClient      *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	client := clientImpl{
		destinationName: "",
		restClient:      resty.New(),
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c clientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.restClient.NewRequest().SetContext(ctx)
}

func WithClientDestination(name, baseURL string) ClientOption {
	return func(c *clientImpl) {
		c.destinationName = name
		c.restClient.SetBaseURL(baseURL)
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetTimeout(timeout)
	}
}

func WithRequestIDForwarding(headerName string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(headerName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			requestLogger := logger.With(log.Fields{
				"destinationName": destinationNameForLogging(c),
				"method":          resp.Request.Method,
				"url":             resp.Request.URL,
				"responseCode":    resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				requestLogger.Warn(resp.Request.Context(), "http call completed with internal error")
			} else {
				requestLogger.Info(resp.Request.Context(), "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					"destinationName": destinationNameForLogging(c),
					"method":          req.Method,
					"url":             req.URL,
				}).
				WithError(err).
				Warn(req.Context(), "http call completed with error")
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f *ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, f.baseOpts...)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func (f *ClientFactory) InitRawClient(extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func destinationNameForLogging(c *clientImpl) string {
	if c.destinationName != "" {
		return c.destinationName
	}
	return "-"
}
