package navigation

import (
	"go.uber.org/fx"

	"navkit/internal/config"
	"navkit/internal/config/logger"
)

// Module provides the navigation dependencies
var Module = fx.Options(
	fx.Provide(
		NewShutdownHook,
		NewFromConfig,
		fx.Annotate(
			NewObserved,
			fx.From(new(*Controller)),
		),
	),
)

// NewShutdownHook binds Exit to an fx application shutdown
func NewShutdownHook(shutdowner fx.Shutdowner) ShutdownHook {
	return func() error {
		return shutdowner.Shutdown()
	}
}

// NewFromConfig builds a controller from the configured navigation tree
func NewFromConfig(cfg *config.Config, hook ShutdownHook, log logger.Logger) *Controller {
	nav := cfg.Navigation
	home := NewNode(nav.Home.Title, nav.Home.Icon)

	content := make([]Node, 0, len(nav.Content)+1)
	if nav.IncludeHome {
		content = append(content, home)
	}

	for _, n := range nav.Content {
		content = append(content, NewNode(n.Title, n.Icon))
	}

	return New(
		home,
		WithContent(content),
		WithHomePolicy(parseHomePolicy(nav.HomePolicy)),
		WithShutdownHook(hook),
		WithLogger(log),
	)
}

func parseHomePolicy(policy string) HomePolicy {
	if policy == config.HomePolicyImplicit {
		return HomePolicyImplicit
	}

	return HomePolicyStrict
}
