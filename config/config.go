package config

import "github.com/lambda-feedback/clicklog/util/conf"

// EnvPrefix is the prefix of env vars read by the config layer,
// e.g. CLICKLOG__PORT=8080. Nested keys are separated by __.
const EnvPrefix = "CLICKLOG__"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// ConfigFile is an optional .json or .env file
	// layered between defaults and env vars
	ConfigFile string `conf:"config"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}
