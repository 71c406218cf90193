package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/clicklog/app/lambda"
	"github.com/lambda-feedback/clicklog/app/standalone"
)

func newTestApp(command *cli.Command) *cli.App {
	return &cli.App{
		Name:     appName,
		Flags:    rootApp.Flags,
		Before:   rootApp.Before,
		Commands: []*cli.Command{command},
	}
}

func TestServeConfig_Defaults(t *testing.T) {
	var cfg standalone.Config

	app := newTestApp(&cli.Command{
		Name:  "serve",
		Flags: serveCmd.Flags,
		Action: func(ctx *cli.Context) (err error) {
			cfg, err = parseServeConfig(ctx)
			return err
		},
	})

	require.NoError(t, app.Run([]string{appName, "serve"}))

	assert.Equal(t, "", cfg.HttpConfig.Host)
	assert.Equal(t, 3000, cfg.HttpConfig.Port)
	assert.False(t, cfg.HttpConfig.H2c)
	assert.Equal(t, "public", cfg.Handler.PublicDir)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestServeConfig_Flags(t *testing.T) {
	var cfg standalone.Config

	app := newTestApp(&cli.Command{
		Name:  "serve",
		Flags: serveCmd.Flags,
		Action: func(ctx *cli.Context) (err error) {
			cfg, err = parseServeConfig(ctx)
			return err
		},
	})

	err := app.Run([]string{
		appName, "serve",
		"--host", "127.0.0.1",
		"--port", "8080",
		"--public-dir", "www",
		"--metrics",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HttpConfig.Host)
	assert.Equal(t, 8080, cfg.HttpConfig.Port)
	assert.Equal(t, "www", cfg.Handler.PublicDir)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLambdaConfig_Defaults(t *testing.T) {
	var cfg lambda.Config

	app := newTestApp(&cli.Command{
		Name:  "lambda",
		Flags: lambdaCmd.Flags,
		Action: func(ctx *cli.Context) (err error) {
			cfg, err = parseLambdaConfig(ctx)
			return err
		},
	})

	require.NoError(t, app.Run([]string{appName, "lambda"}))

	assert.Equal(t, lambda.ProxySourceApiGatewayV2, cfg.ProxySource)
	assert.Equal(t, "public", cfg.Handler.PublicDir)
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}
