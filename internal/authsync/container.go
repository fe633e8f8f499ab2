package authsync

import (
	"context"
	"fmt"
	"time"

	"github.com/orbit-suite/orbit/internal/authsync/app/event"
	"github.com/orbit-suite/orbit/internal/authsync/app/external"
	"github.com/orbit-suite/orbit/internal/authsync/app/service"
	"github.com/orbit-suite/orbit/internal/authsync/domain"
	infraevent "github.com/orbit-suite/orbit/internal/authsync/infra/event"
	"github.com/orbit-suite/orbit/internal/authsync/infra/hub"
	"github.com/orbit-suite/orbit/internal/authsync/infra/identity"
	infrahttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
	"github.com/orbit-suite/orbit/internal/authsync/infra/memory"
	"github.com/orbit-suite/orbit/internal/authsync/infra/notify"
	"github.com/orbit-suite/orbit/internal/pkg/cmd"
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/lazy"
	"github.com/orbit-suite/orbit/pkg/log"
	"github.com/orbit-suite/orbit/pkg/pulsar"
	"github.com/orbit-suite/orbit/pkg/worker"
)

const (
	identityIssuerDestination pkghttp.Destination = "identityIssuer"
	authHubDestination        pkghttp.Destination = "authHub"

	expiredSessionSweepInterval = time.Hour
)

// MustParseServiceConfig reads the optional session lifetime overrides,
// zero values fall back to the service defaults.
func MustParseServiceConfig() service.Config {
	var config service.Config
	if ttl := env.Must(env.ParseOptional[time.Duration]("SESSION_TTL")); ttl != nil {
		config.SessionTTL = *ttl
	}
	if ttl := env.Must(env.ParseOptional[time.Duration]("CUSTOM_TOKEN_TTL")); ttl != nil {
		config.CustomTokenTTL = *ttl
	}
	return config
}

// ExpiredSessionSweeper periodically evicts expired records so sessions that
// are never touched again do not pile up. Reads already treat expired records
// as absent, the sweep only reclaims memory.
func ExpiredSessionSweeper(store domain.SessionStore) worker.ErrorJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(expiredSessionSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := store.DeleteExpired(ctx); err != nil {
					return fmt.Errorf("sweep expired sessions: %w", err)
				}
			}
		}
	}
}

// ErrorMapping translates the module's business errors into response codes.
// Dependency outages answer 503 so clients can distinguish "sign in again"
// from "try again later".
func ErrorMapping() map[int][]error {
	return map[int][]error{
		401: {domain.ErrSessionNotFound, external.ErrInvalidToken, external.ErrRevokedIdentity},
		503: {external.ErrIdentityServiceUnavailable},
	}
}

// NewEventPublisher connects to the broker when PULSAR_ADDRESS is set and
// degrades to a no-op otherwise, session events are purely observational.
func NewEventPublisher(logger log.Logger) (event.Publisher, func()) {
	address := env.Must(env.ParseOptional[string]("PULSAR_ADDRESS"))
	if address == nil {
		return event.NewNopPublisher(), func() {}
	}

	producer, err := pulsar.NewProducer(&pulsar.Config{Address: *address}, logger)
	if err != nil {
		panic(err)
	}
	return infraevent.NewPublisher(producer, logger), producer.Close
}

type HubDependencyContainer struct {
	store   domain.SessionStore
	service lazy.Loader[service.HubService]
	cookies infrahttp.CookieBaker
}

func NewHubDependencyContainer(
	infra *cmd.InfrastructureContainer,
	events event.Publisher,
	config service.Config,
) *HubDependencyContainer {
	store := memory.NewSessionStore()
	return &HubDependencyContainer{
		store: store,
		service: lazy.New(func() (service.HubService, error) {
			return service.NewHubService(
				store,
				identity.NewService(cmd.MustInitClient(&infra.HTTPClientFactory, identityIssuerDestination)),
				notify.NewLogoutNotifier(infra.HTTPClientFactory.InitRawClient(), infra.Logger),
				events,
				config,
			), nil
		}),
		cookies: infrahttp.NewHubCookieBaker(),
	}
}

func (c *HubDependencyContainer) SessionStore() domain.SessionStore {
	return c.store
}

func (c *HubDependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	svc := c.service.MustLoad()
	for _, handler := range []pkghttp.Handler{
		infrahttp.NewLoginHandler(svc, c.cookies),
		infrahttp.NewGetSessionHandler(svc, c.cookies),
		infrahttp.NewLogoutHandler(svc, c.cookies),
		infrahttp.NewSSOStatusHandler(svc, c.cookies),
		infrahttp.NewCustomTokenHandler(svc, c.cookies),
		infrahttp.NewFastBootstrapHandler(svc, c.cookies),
		infrahttp.NewRegisterOriginHandler(svc),
		infrahttp.NewLogoutSyncHandler(svc),
	} {
		registry.Register(handler, opts...)
	}
}

type SatelliteDependencyContainer struct {
	store   domain.SessionStore
	service lazy.Loader[service.SatelliteService]
	cookies infrahttp.CookieBaker
}

// NewSatelliteDependencyContainer wires the session surface a suite
// application embeds next to its own module. The origin is this application's
// public origin as the hub should fan logouts out to it.
func NewSatelliteDependencyContainer(
	infra *cmd.InfrastructureContainer,
	events event.Publisher,
	origin string,
	config service.Config,
) *SatelliteDependencyContainer {
	store := memory.NewSessionStore()
	return &SatelliteDependencyContainer{
		store: store,
		service: lazy.New(func() (service.SatelliteService, error) {
			return service.NewSatelliteService(
				store,
				identity.NewService(cmd.MustInitClient(&infra.HTTPClientFactory, identityIssuerDestination)),
				hub.NewService(cmd.MustInitClient(&infra.HTTPClientFactory, authHubDestination)),
				events,
				origin,
				config,
				infra.Logger,
			), nil
		}),
		cookies: infrahttp.NewSatelliteCookieBaker(),
	}
}

func (c *SatelliteDependencyContainer) SessionStore() domain.SessionStore {
	return c.store
}

func (c *SatelliteDependencyContainer) AuthMiddleware(config infrahttp.MiddlewareConfig) pkghttp.ServerMiddleware {
	return infrahttp.NewAuthMiddleware(c.service.MustLoad(), c.cookies, config)
}

func (c *SatelliteDependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	svc := c.service.MustLoad()
	for _, handler := range []pkghttp.Handler{
		infrahttp.NewSessionSyncHandler(svc, c.cookies),
		infrahttp.NewGetSessionHandler(svc, c.cookies),
		infrahttp.NewLogoutHandler(svc, c.cookies),
		infrahttp.NewCustomTokenHandler(svc, c.cookies),
		infrahttp.NewFastBootstrapHandler(svc, c.cookies),
		infrahttp.NewSessionDropHandler(svc),
	} {
		registry.Register(handler, opts...)
	}
}
