package metrics

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/lambda-feedback/clicklog/internal/server"
)

const DefaultPath = "/metrics"

func Module(config Config) fx.Option {
	options := []fx.Option{
		// provide collectors
		fx.Provide(New),
		// count every request served by the router
		fx.Provide(func(m *Metrics) server.MiddlewareResult {
			return server.AsMiddleware(m.Instrument)
		}),
	}

	if config.Enabled {
		path := config.Path
		if path == "" {
			path = DefaultPath
		}

		// provide exposition route
		options = append(options, fx.Provide(func(m *Metrics) server.HttpHandlerResult {
			return server.AsHttpHandler(http.MethodGet+" "+path, m.Handler())
		}))
	}

	return fx.Module("metrics", options...)
}
