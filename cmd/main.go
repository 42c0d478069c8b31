package main

import (
	"fmt"
	"os"

	"go.exprc.dev/internal/commands/root"
)

func main() {
	rootCmd := root.NewCommand()

	if err := rootCmd.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
