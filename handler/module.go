package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/clicklog/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module("handler",
		// rename logger for module
		logging.DecorateLogger("handler"),
		// provide handler config
		fx.Supply(config),
		// provide handlers
		fx.Provide(NewClickHandler),
		fx.Provide(NewStaticHandler),
		// provide routes
		fx.Provide(NewClickRoute),
		fx.Provide(NewStaticRoute),
	)
}
