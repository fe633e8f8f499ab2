package main

import (
	"context"

	"github.com/orbit-suite/orbit/data"
	"github.com/orbit-suite/orbit/internal/authsync"
	infrahttp "github.com/orbit-suite/orbit/internal/authsync/infra/http"
	"github.com/orbit-suite/orbit/internal/notes"
	"github.com/orbit-suite/orbit/internal/pkg/cmd"
	internalhttp "github.com/orbit-suite/orbit/internal/pkg/http"
	pkgcmd "github.com/orbit-suite/orbit/pkg/cmd"
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	pkgsql "github.com/orbit-suite/orbit/pkg/sql"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer()
	logger := infra.Logger
	defer pkgcmd.HandleAppPanic(ctx, logger)

	logger.Info(ctx, "notes service is starting")

	db, err := pkgsql.NewDatabase(&pkgsql.Config{
		DSN: pkgsql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
		},
	}, logger)
	if err != nil {
		panic(err)
	}
	defer db.Close(ctx)

	err = pkgsql.NewMigrator(db, logger).Execute(ctx, pkgsql.FSMigrations(data.NotesMigrations))
	if err != nil {
		panic(err)
	}

	events, closeEvents := authsync.NewEventPublisher(logger)
	defer closeEvents()

	authContainer := authsync.NewSatelliteDependencyContainer(
		infra,
		events,
		env.Must(env.Parse[string]("APP_ORIGIN")),
		authsync.MustParseServiceConfig(),
	)
	notesContainer := notes.NewDependencyContainer(db)

	protectedPaths := env.Must(env.ParseOptionalList[string]("PROTECTED_PATHS", ","))
	if len(protectedPaths) == 0 {
		protectedPaths = []string{"/api/"}
	}

	httpServer := pkghttp.NewServer(
		cmd.ServerAddress(),
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithRequestID(internalhttp.RequestIDHeader),
		pkghttp.WithErrorMapping(authsync.ErrorMapping()),
		pkghttp.WithErrorMapping(notes.ErrorMapping()),
		pkghttp.WithLogging(logger),
		pkghttp.WithMW(authContainer.AuthMiddleware(infrahttp.MiddlewareConfig{
			LoginURL:              env.Must(env.Parse[string]("LOGIN_URL")),
			ProtectedPathPrefixes: protectedPaths,
		})),
	)
	authContainer.MustRegisterHTTPHandlers(httpServer)
	notesContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "notes service is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		authsync.ExpiredSessionSweeper(authContainer.SessionStore()),
	)
}
