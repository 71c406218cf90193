package standalone

import (
	"github.com/lambda-feedback/clicklog/handler"
	"github.com/lambda-feedback/clicklog/internal/metrics"
	"github.com/lambda-feedback/clicklog/internal/server"
	"github.com/lambda-feedback/clicklog/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`

	// Handler represents the configuration for the gateway routes.
	Handler handler.Config `conf:",squash"`

	// Metrics represents the configuration for the metrics route.
	Metrics metrics.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"host":         "",
	"port":         3000,
	"h2c":          false,
	"public_dir":   "public",
	"metrics":      false,
	"metrics_path": metrics.DefaultPath,
}
