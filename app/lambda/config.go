package lambda

import (
	"github.com/lambda-feedback/clicklog/handler"
	"github.com/lambda-feedback/clicklog/internal/metrics"
	"github.com/lambda-feedback/clicklog/util/conf"
)

// ProxySource represents the source of a lambda request.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`

	// Handler represents the configuration for the gateway routes.
	Handler handler.Config `conf:",squash"`

	// Metrics represents the configuration for the metrics route.
	Metrics metrics.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"lambda_proxy_source": ProxySourceApiGatewayV2.String(),
	"public_dir":          "public",
	"metrics":             false,
	"metrics_path":        metrics.DefaultPath,
}
