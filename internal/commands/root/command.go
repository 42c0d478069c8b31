package root

import (
	cli "github.com/urfave/cli/v2"
	"go.exprc.dev/internal/commands/parse"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:  "exprc",
		Usage: "Expression compiler front end.",
		Commands: []*cli.Command{
			parse.NewCommand(),
		},
	}
}
