package components

import (
	"timebar/internal/infra/readstore"
	"timebar/internal/infra/repository"
	"timebar/internal/usecase/commands"
	"timebar/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Concrete stores, also needed by the storefront composite
		readstore.NewTimerReadStore,
		readstore.NewShopReadStore,
		fx.Annotate(
			readstore.NewTimerReadStore,
			fx.As(new(queries.TimerReadStore)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
			fx.As(new(commands.ShopReader)),
		),
		fx.Annotate(
			readstore.NewStorefrontReadStore,
			fx.As(new(queries.StorefrontReadStore)),
		),
		fx.Annotate(
			repository.NewTimerRepository,
			fx.As(new(commands.TimerRepository)),
			fx.As(new(commands.ImpressionRepository)),
		),
	),
)
