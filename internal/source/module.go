package source

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"source",
		fx.Provide(NewClient),
	)
}
