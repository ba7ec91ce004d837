// Package app holds the fx option groups shared by the storefront server
// and the terminal client. Each binary adds its own service.Confirmer and
// its delivery surface.
package app

import (
	"context"

	"storefront/config"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/backend"
	"storefront/internal/infra/broadcast"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/store"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/receipt"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	// DurableStorage survives restarts (the browser's local storage).
	DurableStorage = `name:"durable"`
	// SessionStorage lives for one process run (the tab's session storage).
	SessionStorage = `name:"session"`
)

// Core bundles every group below.
func Core() fx.Option {
	return fx.Options(
		InjectInfra(),
		InjectRepo(),
		InjectService(),
		InjectUsecase(),
	)
}

func InjectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		fx.Annotate(
			kv.NewDurable,
			fx.ResultTags(DurableStorage),
		),
		fx.Annotate(
			kv.NewSession,
			fx.ResultTags(SessionStorage),
		),
	)
}

func InjectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				store.NewCartStore,
				fx.ParamTags(DurableStorage),
			),
			fx.Annotate(
				store.NewIdentityStore,
				fx.ParamTags(DurableStorage),
			),
			fx.Annotate(
				store.NewCheckoutStore,
				fx.ParamTags(SessionStorage),
			),
		),
	)
}

func InjectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.New,
			backend.AsCatalogAPI,
			backend.AsAuthAPI,
			backend.AsOrderAPI,
			backend.AsAdminAPI,
			broadcast.NewBroadcaster,
			payment.NewStripeProcessor,
			auth.NewJWTInspector,
			qrcode.NewFromConfig,
			receipt.NewPDFRenderer,
			receipt.NewArchive,
			metrics.AsRecorder,
		),
	)
}

func InjectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewAuthService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewAdminService,
		),
	)
}
