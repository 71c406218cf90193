package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/clicklog/app"
	"github.com/lambda-feedback/clicklog/app/standalone"
	"github.com/lambda-feedback/clicklog/util/conf"
)

var (
	serveCmdDescription = `The serve command starts the http server. Files in the
public directory are served as they are, and every POST to
/log writes "Button clicked!" to the log.

The command will launch the http server and blocks indefin-
itely, processing incoming http requests.`
	httpFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "host",
			Aliases:  []string{"H"},
			Usage:    "The host to listen on. Empty listens on all interfaces.",
			Category: "http",
			EnvVars:  []string{"HTTP_HOST"},
		},
		&cli.IntFlag{
			Name:     "port",
			Aliases:  []string{"P"},
			Usage:    "The port to listen on.",
			Value:    3000,
			Category: "http",
			EnvVars:  []string{"HTTP_PORT"},
		},
		&cli.BoolFlag{
			Name:     "h2c",
			Usage:    "Enable HTTP/2 cleartext upgrade.",
			Value:    false,
			Category: "http",
			EnvVars:  []string{"HTTP_H2C"},
		},
	}
	gatewayFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "public-dir",
			Usage:    "The directory static files are served from.",
			Value:    "public",
			Category: "gateway",
			EnvVars:  []string{"PUBLIC_DIR"},
		},
		&cli.BoolFlag{
			Name:     "metrics",
			Usage:    "Expose prometheus metrics.",
			Category: "gateway",
			EnvVars:  []string{"METRICS_ENABLED"},
		},
		&cli.StringFlag{
			Name:     "metrics-path",
			Usage:    "The route prometheus metrics are exposed on.",
			Value:    "/metrics",
			Category: "gateway",
			EnvVars:  []string{"METRICS_PATH"},
		},
	}
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags:       append(append([]cli.Flag{}, httpFlags...), gatewayFlags...),
	}
)

func serveAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseServeConfig(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func parseServeConfig(ctx *cli.Context) (standalone.Config, error) {
	opts, err := app.ParseOptions(ctx, standalone.DefaultConfig)
	if err != nil {
		return standalone.Config{}, err
	}

	return conf.Parse[standalone.Config](opts)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
