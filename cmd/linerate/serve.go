package main

import (
	"context"

	cli "github.com/urfave/cli/v3"

	"github.com/linerate/linerate/pkg/log"
	"github.com/linerate/linerate/pkg/otelhelper"
)

const defaultPort = 8097

func serveCommand() *cli.Command {
	logger := log.WithModule("api")

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the bottleneck analysis HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:    "enable-tracing",
				Usage:   "Export OTLP traces for analysis runs",
				Sources: cli.EnvVars("ENABLE_TRACING"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing linerate API")

			api := NewAPI(logger)

			if command.Bool("enable-tracing") {
				tracer, err := otelhelper.NewTracer(ctx, "linerate-api")
				if err != nil {
					return err
				}

				api.tracer = tracer
			}

			return api.Start(command.Int("port"))
		},
	}
}
