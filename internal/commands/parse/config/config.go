package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.exprc.dev/internal/commands/parse/exec"
)

type Flagger interface {
	String(name string) string
	IsSet(name string) bool
}

type Config struct {
	Expr     string
	Inputs   []string
	Format   exec.Format
	LogLevel zerolog.Level
}

// Read resolves the parse command settings. An explicitly set flag wins over
// the environment, which wins over the flag default.
func Read(flags Flagger, args []string, getEnv func(string) string) (*Config, error) {
	expr := flags.String("expr")
	if expr == "" && len(args) == 0 {
		return nil, fmt.Errorf("either flag --expr or an input file is required")
	}

	if expr != "" && len(args) != 0 {
		return nil, fmt.Errorf("flag --expr cannot be combined with input files")
	}

	format, err := exec.ParseFormat(lookup(flags, getEnv, "format", "EXPRC_FORMAT"))
	if err != nil {
		return nil, fmt.Errorf("flag --format: %w", err)
	}

	logLevel, err := zerolog.ParseLevel(lookup(flags, getEnv, "log-level", "EXPRC_LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("flag --log-level: %w", err)
	}

	cfg := Config{
		Expr:     expr,
		Inputs:   args,
		Format:   format,
		LogLevel: logLevel,
	}

	return &cfg, nil
}

func lookup(flags Flagger, getEnv func(string) string, flag string, env string) string {
	if flags.IsSet(flag) {
		return flags.String(flag)
	}

	if v := getEnv(env); v != "" {
		return v
	}

	return flags.String(flag)
}
