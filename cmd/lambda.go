package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/clicklog/app"
	"github.com/lambda-feedback/clicklog/app/lambda"
	"github.com/lambda-feedback/clicklog/util/conf"
	"github.com/lambda-feedback/clicklog/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts clicklog as an AWS Lambda runtime
interface client. Lambda proxy events are translated into
http requests and served by the same routes as the http
server.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "lambda-proxy-source",
			Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
			Value:    "API_GW_V2",
			EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
			Category: "lambda",
		},
	}
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags:       append(append([]cli.Flag{}, lambdaFlags...), gatewayFlags...),
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseLambdaConfig(ctx)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func parseLambdaConfig(ctx *cli.Context) (lambda.Config, error) {
	opts, err := app.ParseOptions(ctx, lambda.DefaultConfig)
	if err != nil {
		return lambda.Config{}, err
	}

	return conf.Parse[lambda.Config](opts)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
