package bus

import (
	"context"

	"go.uber.org/fx"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, b Bus) {
		lc.Append(fx.StopHook(func(ctx context.Context) error {
			b.Close()
			return nil
		}))
	}),
)
