package main

import (
	"os"

	"nextin/internal/cli"
)

func main() {
	// Errors are already printed by the command that failed.
	if err := cli.NewRootCmd(cli.NewApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		os.Exit(1)
	}
}
