package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/clicklog/config"
	"github.com/lambda-feedback/clicklog/internal/shell"
	"github.com/lambda-feedback/clicklog/util/conf"
	"github.com/lambda-feedback/clicklog/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
	)

	return shell.New(log, sharedModule), nil
}

// ParseOptions returns the options commands parse their config with,
// layering the global config file under env vars and cli flags.
func ParseOptions(ctx *cli.Context, defaults conf.DefaultConfig) (conf.ParseOptions, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return conf.ParseOptions{}, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return conf.ParseOptions{}, err
	}

	return conf.ParseOptions{
		Cli:       ctx,
		Defaults:  defaults,
		EnvPrefix: config.EnvPrefix,
		FileName:  cfg.ConfigFile,
		Log:       log,
	}, nil
}
