package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/clicklog/util/logging"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts clicklog accordingly.

If the AWS_LAMBDA_RUNTIME_API environment variable is set,
clicklog will start the AWS Lambda runtime handler, matching
the behaviour of the lambda command.

Otherwise, clicklog will start the standalone http server.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start clicklog.",
		Description: runCmdDescription,
		Action:      runAction,
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func init() {
	runCmd.Flags = append(runCmd.Flags, httpFlags...)
	runCmd.Flags = append(runCmd.Flags, gatewayFlags...)
	runCmd.Flags = append(runCmd.Flags, lambdaFlags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
