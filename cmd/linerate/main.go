package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/linerate/linerate/pkg/log"
)

func main() {
	cmd := &cli.Command{
		Name:                  "linerate",
		Usage:                 "Analyze process capacity and find the bottleneck",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			analyzeCommand(),
			serveCommand(),
			templatesCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := log.WithModule("cli")
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
