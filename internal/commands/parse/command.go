package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"go.exprc.dev/internal/commands/parse/config"
	"go.exprc.dev/internal/commands/parse/exec"
	exprc "go.exprc.dev/pkg"
)

func NewCommand() *cli.Command {
	formats := make([]string, 0, len(exec.Formats))
	for _, f := range exec.Formats {
		formats = append(formats, string(f))
	}

	return &cli.Command{
		Name:      "parse",
		Usage:     "Parses expression statements and prints the syntax tree.",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Source text to parse instead of files.",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format, one of: " + strings.Join(formats, ", ") + ". Env: EXPRC_FORMAT.",
				Value:   string(exec.FormatSExpr),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level written to stderr. Env: EXPRC_LOG_LEVEL.",
				Value: zerolog.WarnLevel.String(),
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).
		Level(cfg.LogLevel).
		With().Timestamp().Str("command", "parse").Logger()

	ctx := logger.WithContext(cliCtx.Context)

	logger.Debug().Str("format", string(cfg.Format)).Strs("inputs", cfg.Inputs).Msg("running with config")

	execConfig := exec.Config{
		Expr:   cfg.Expr,
		Inputs: cfg.Inputs,
		Format: cfg.Format,
	}

	executor := exec.NewExecutor(exprc.NewCompiler(), os.Stdin, os.Stdout)
	if err := executor.Run(ctx, execConfig); err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	return nil
}
