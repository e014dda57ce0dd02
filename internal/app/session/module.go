package session

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the session runner and the navigation journal
var Module = fx.Options(
	fx.Provide(
		NewRunner,
		NewJournal,
	),
	fx.Invoke(registerJournal),
)

// registerJournal keeps the journal subscribed for the lifetime of the application
func registerJournal(lc fx.Lifecycle, j Journal) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			j.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
