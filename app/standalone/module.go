package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/clicklog/handler"
	"github.com/lambda-feedback/clicklog/internal/metrics"
	"github.com/lambda-feedback/clicklog/internal/server"
	"github.com/lambda-feedback/clicklog/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide metrics
		metrics.Module(config.Metrics),
		// provide handlers
		handler.Module(config.Handler),
		// provide server
		server.Module(config.HttpConfig),
	)
}
