package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/linerate/linerate/pkg/export"
	"github.com/linerate/linerate/pkg/log"
	"github.com/linerate/linerate/pkg/services"
)

const exportFileMode = 0o644

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Run a bottleneck analysis for a process definition",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Process definition file (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Analyze a built-in example template instead of a file",
			},
			&cli.StringFlag{
				Name:  "markdown",
				Usage: "Write a Markdown report to the given path",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Write a CSV export to the given path",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored terminal output",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(ctx context.Context, command *cli.Command) error {
	log.Setup(command.String("log-level"))

	if command.Bool("no-color") {
		color.NoColor = true
	}

	service := services.NewAnalysis(log.WithModule("analyze"))

	run, err := resolveRun(ctx, command, service)
	if err != nil {
		return err
	}

	export.Terminal(os.Stdout, run.Report, run.Recommendations)

	if path := command.String("markdown"); path != "" {
		document := export.Markdown(run.Report, run.Recommendations)
		if err := os.WriteFile(path, []byte(document), exportFileMode); err != nil {
			return fmt.Errorf("failed to write Markdown report: %w", err)
		}
	}

	if path := command.String("csv"); path != "" {
		data, err := export.CSV(run.Report)
		if err != nil {
			return err
		}

		if err := os.WriteFile(path, data, exportFileMode); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
	}

	return nil
}

func resolveRun(ctx context.Context, command *cli.Command, service *services.Analysis) (*services.Run, error) {
	file := command.String("file")
	template := command.String("template")

	switch {
	case file != "" && template != "":
		return nil, errors.New("--file and --template are mutually exclusive")
	case template != "":
		return service.RunTemplate(ctx, template)
	case file != "":
		def, err := loadDefinition(file)
		if err != nil {
			return nil, err
		}

		return service.Run(ctx, *def)
	default:
		return nil, errors.New("either --file or --template is required")
	}
}

// loadDefinition reads a process definition file. YAML is a superset of
// JSON, so a single decoder covers both formats.
func loadDefinition(path string) (*services.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	var def services.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition file %q: %w", path, err)
	}

	return &def, nil
}
