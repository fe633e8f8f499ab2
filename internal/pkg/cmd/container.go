package cmd

import (
	"github.com/orbit-suite/orbit/pkg/env"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/log"
)

var logLevels = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

// InfrastructureContainer wires the ambient concerns every suite binary
// shares before any module-specific dependency is built.
type InfrastructureContainer struct {
	Logger            log.Logger
	HTTPClientFactory pkghttp.ClientFactory
}

func NewInfrastructureContainer() *InfrastructureContainer {
	logger := log.New(mustParseLogLevel())
	return &InfrastructureContainer{
		Logger:            logger,
		HTTPClientFactory: NewHTTPClientFactory(logger),
	}
}

// ServerAddress returns the HTTP listen address for a suite binary,
// overridable with SERVICE_ADDRESS.
func ServerAddress() string {
	if address := env.Must(env.ParseOptional[string]("SERVICE_ADDRESS")); address != nil {
		return *address
	}
	return pkghttp.DefaultServerAddress
}

func mustParseLogLevel() log.Level {
	name := env.Must(env.ParseOptional[string]("LOG_LEVEL"))
	if name == nil {
		return log.LevelInfo
	}

	level, ok := logLevels[*name]
	if !ok {
		panic("env LOG_LEVEL has invalid value: " + *name)
	}
	return level
}
