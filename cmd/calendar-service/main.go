package main

import (
	"context"

	"github.com/orbit-suite/orbit/internal/authsync"
	infrahttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
	"github.com/orbit-suite/orbit/internal/pkg/cmd"
	internalhttp "github.com/orbit-suite/orbit/internal/pkg/http"
	pkgcmd "github.com/orbit-suite/orbit/pkg/cmd"
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

// The calendar service carries only the session surface for now, its domain
// API is served by the legacy deployment until the migration completes.
func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer()
	logger := infra.Logger
	defer pkgcmd.HandleAppPanic(ctx, logger)

	logger.Info(ctx, "calendar service is starting")

	events, closeEvents := authsync.NewEventPublisher(logger)
	defer closeEvents()

	authContainer := authsync.NewSatelliteDependencyContainer(
		infra,
		events,
		env.Must(env.Parse[string]("APP_ORIGIN")),
		authsync.MustParseServiceConfig(),
	)

	protectedPaths := env.Must(env.ParseOptionalList[string]("PROTECTED_PATHS", ","))
	if len(protectedPaths) == 0 {
		protectedPaths = []string{"/api/"}
	}

	httpServer := pkghttp.NewServer(
		cmd.ServerAddress(),
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithRequestID(internalhttp.RequestIDHeader),
		pkghttp.WithErrorMapping(authsync.ErrorMapping()),
		pkghttp.WithLogging(logger),
		pkghttp.WithMW(authContainer.AuthMiddleware(infrahttp.MiddlewareConfig{
			LoginURL:              env.Must(env.Parse[string]("LOGIN_URL")),
			ProtectedPathPrefixes: protectedPaths,
		})),
	)
	authContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "calendar service is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		authsync.ExpiredSessionSweeper(authContainer.SessionStore()),
	)
}
