package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	cli "github.com/urfave/cli/v3"

	"github.com/configforge/configforge/pkg/log"
)

const defaultPort = 8480

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	logger := log.WithModule("api")

	cmd := &cli.Command{
		Name:                  "configforge-api",
		Usage:                 "Generate and validate service configurations",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "schemas-dir",
				Usage:   "Directory containing per-section schema documents",
				Value:   "./examples/schemas",
				Sources: cli.EnvVars("SCHEMAS_DIR"),
			},
			&cli.StringFlag{
				Name:    "openai-api-key",
				Usage:   "OpenAI API key for the generation oracle",
				Sources: cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "openai-model",
				Usage:   "OpenAI model used for generation",
				Value:   openai.GPT4oMini,
				Sources: cli.EnvVars("OPENAI_MODEL"),
			},
			&cli.DurationFlag{
				Name:    "oracle-timeout",
				Usage:   "Per-request timeout for oracle completions",
				Value:   45 * time.Second,
				Sources: cli.EnvVars("ORACLE_TIMEOUT"),
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

			logger.InfoContext(ctx, "Initializing ConfigForge API")

			api, err := NewAPI(
				logger,
				command.String("schemas-dir"),
				command.String("openai-api-key"),
				command.String("openai-model"),
				command.Duration("oracle-timeout"),
			)
			if err != nil {
				return err
			}

			err = api.Start(command.Int("port"))
			if err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
