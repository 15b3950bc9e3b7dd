package di

import (
	"go.uber.org/fx"

	"github.com/darzi-app/darzi/internal/app"
	"github.com/darzi-app/darzi/internal/catalog"
	"github.com/darzi-app/darzi/internal/config"
	"github.com/darzi-app/darzi/internal/logger"
	"github.com/darzi-app/darzi/internal/metrics"
	"github.com/darzi-app/darzi/internal/server/http/handlers"
	"github.com/darzi-app/darzi/internal/server/http/router"
	"github.com/darzi-app/darzi/internal/storage/memstore"
	"github.com/darzi-app/darzi/internal/subscription"
	"github.com/darzi-app/darzi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		catalog.Module,
		metrics.Module,
		memstore.Module,
		subscription.Module,
		usecase.Module,
		fx.Provide(func(f *app.TailoringFacade) handlers.TailoringFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
