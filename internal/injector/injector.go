//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/spawnkit/internal/core/observability/log"
	"github.com/zeusync/spawnkit/internal/core/spawn"
)

func provideLog(logger *log.Logger) log.Log {
	return logger
}

func ProvideDirector() *spawn.Director {
	wire.Build(log.Provide, provideLog, spawn.NewDirector)
	return nil
}
