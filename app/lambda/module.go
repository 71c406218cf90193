package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/clicklog/handler"
	"github.com/lambda-feedback/clicklog/internal/metrics"
	"github.com/lambda-feedback/clicklog/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide metrics
		metrics.Module(config.Metrics),
		// provide handlers
		handler.Module(config.Handler),
		// provide lambda handler
		fx.Provide(NewLifecycleHandler),
		// invoke lambda handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
