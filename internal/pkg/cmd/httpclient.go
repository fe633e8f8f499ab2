package cmd

import (
	"fmt"

	internalhttp "github.com/orbit-suite/orbit/internal/pkg/http"
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/log"
	"github.com/orbit-suite/orbit/pkg/strings"
)

// NewHTTPClientFactory builds clients that forward the request correlation
// identifier and log each outgoing call.
func NewHTTPClientFactory(logger log.Logger) pkghttp.ClientFactory {
	return pkghttp.NewClientFactory(
		pkghttp.WithRequestIDForwarding(internalhttp.RequestIDHeader),
		pkghttp.WithRequestLogging(logger),
	)
}

// MustInitClient resolves the destination's base URL from the environment,
// e.g. Destination "authHub" reads AUTH_HUB_SERVICE_URL.
func MustInitClient(factory *pkghttp.ClientFactory, dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	baseURL := env.Must(env.Parse[string](fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(dest)))))
	return factory.InitClient(dest, baseURL, extraOpts...)
}
