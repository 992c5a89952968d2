package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/configforge/configforge/pkg/log"
	"github.com/configforge/configforge/pkg/schemas"
)

func NewSectionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "sections",
		Aliases: []string{"s"},
		Usage:   "List sections in the order the wizard walks them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schemas-dir",
				Usage:   "Directory containing per-section schema documents",
				Value:   "./examples/schemas",
				Sources: cli.EnvVars("SCHEMAS_DIR"),
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

			repo, err := schemas.NewRepository(command.String("schemas-dir"), log.WithModule("sections"))
			if err != nil {
				return err
			}

			order, err := repo.Order()
			if err != nil {
				return err
			}

			for _, name := range order.Sections {
				marker := "optional"
				if repo.IsRequired(name) {
					marker = "required"
				}

				fmt.Printf("  %s (%s)\n", name, marker)
			}

			return nil
		},
	}
}
