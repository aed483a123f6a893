package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/linerate/linerate/pkg/models"
	"github.com/linerate/linerate/pkg/services"
)

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:    "templates",
		Aliases: []string{"t"},
		Usage:   "Built-in example processes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the built-in templates",
				Action: func(ctx context.Context, command *cli.Command) error {
					for _, t := range models.Templates() {
						fmt.Printf("%-16s %-20s %s steps  %s\n",
							t.ID, t.Name, strconv.Itoa(len(t.Steps)), t.Description)
					}

					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Print a template as a YAML process definition",
				ArgsUsage: "<template-id>",
				Action: func(ctx context.Context, command *cli.Command) error {
					template, err := models.TemplateByID(command.Args().First())
					if err != nil {
						return err
					}

					def := templateDefinition(template)

					return yaml.NewEncoder(os.Stdout).Encode(def)
				},
			},
		},
	}
}

// templateDefinition expands a template into the definition format accepted
// by `linerate analyze --file`, so `show` output is directly reusable.
func templateDefinition(template models.Template) services.Definition {
	def := services.Definition{
		TimeUnit: template.TimeUnit,
		Steps:    make([]services.StepInput, 0, len(template.Steps)),
	}

	for _, s := range template.Steps {
		step := services.StepInput{
			Name:      s.Name,
			Resources: make([]services.ResourceInput, 0, s.Resources),
		}

		for i := 1; i <= s.Resources; i++ {
			step.Resources = append(step.Resources, services.ResourceInput{
				Name:           fmt.Sprintf("Resource %d", i),
				ProcessingTime: s.ProcessingTime,
			})
		}

		def.Steps = append(def.Steps, step)
	}

	return def
}
