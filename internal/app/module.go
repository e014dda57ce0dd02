package app

import (
	"go.uber.org/fx"

	"navkit/internal/app/bus"
	"navkit/internal/app/cli"
	"navkit/internal/app/generator"
	"navkit/internal/app/navigation"
	"navkit/internal/app/session"
	"navkit/internal/config/logger"
)

// Module wires every application component
var Module = fx.Options(
	logger.Module,
	bus.Module,
	navigation.Module,
	session.Module,
	generator.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
