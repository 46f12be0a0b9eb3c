package logging

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"logging",
		fx.Provide(func(lc fx.Lifecycle, base *zap.Logger) *Setup {
			setup := NewSetup(base)
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					return setup.Close()
				},
			})
			return setup
		}),
	)
}
