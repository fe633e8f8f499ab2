package main

import (
	"context"

	"github.com/orbit-suite/orbit/internal/authsync"
	"github.com/orbit-suite/orbit/internal/pkg/cmd"
	internalhttp "github.com/orbit-suite/orbit/internal/pkg/http"
	pkgcmd "github.com/orbit-suite/orbit/pkg/cmd"
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer()
	logger := infra.Logger
	defer pkgcmd.HandleAppPanic(ctx, logger)

	logger.Info(ctx, "auth hub is starting")

	events, closeEvents := authsync.NewEventPublisher(logger)
	defer closeEvents()

	container := authsync.NewHubDependencyContainer(infra, events, authsync.MustParseServiceConfig())

	// Satellite origins that may call the hub with credentials from their
	// bridge frames. Anything else is rejected before reaching a handler.
	allowedOrigins := env.Must(env.ParseList[string]("ALLOWED_ORIGINS", ","))

	httpServer := pkghttp.NewServer(
		cmd.ServerAddress(),
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithRequestID(internalhttp.RequestIDHeader),
		pkghttp.WithCORS(allowedOrigins),
		pkghttp.WithErrorMapping(authsync.ErrorMapping()),
		pkghttp.WithLogging(logger),
	)
	container.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "auth hub is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		authsync.ExpiredSessionSweeper(container.SessionStore()),
	)
}
