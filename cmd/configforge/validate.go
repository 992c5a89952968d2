package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/configforge/configforge/pkg/log"
	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/services"
)

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a configuration file against the section schemas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schemas-dir",
				Usage:   "Directory containing per-section schema documents",
				Value:   "./examples/schemas",
				Sources: cli.EnvVars("SCHEMAS_DIR"),
			},
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the configuration file to validate",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "section",
				Usage:   "Validate the file as a single section instead of a full configuration",
				Value:   "",
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
			logger := log.WithModule("validate")

			repo, err := schemas.NewRepository(command.String("schemas-dir"), logger)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(command.String("file"))
			if err != nil {
				return fmt.Errorf("failed to read configuration file: %w", err)
			}

			var config any
			if err := json.Unmarshal(data, &config); err != nil {
				return fmt.Errorf("configuration file is not valid JSON: %w", err)
			}

			// ValidateConfig never reaches the oracle.
			generator := services.NewGenerator(repo, nil, logger)

			result, err := generator.ValidateConfig(config, command.String("section"))
			if err != nil {
				return err
			}

			fmt.Println("Configuration Validation Results:")
			fmt.Println("=================================")

			if result.Valid {
				fmt.Printf("\n✅ VALID: %s\n", command.String("file"))

				return nil
			}

			for _, violation := range result.Errors {
				fmt.Printf("  ❌ %s: %s (%s)\n", violation.Field, violation.Message, violation.Code)
			}

			fmt.Printf("\nValidation Summary:\n")
			fmt.Printf("  Total violations: %d\n", len(result.Errors))

			return fmt.Errorf("found %d validation errors", len(result.Errors))
		},
	}
}
