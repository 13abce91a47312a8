package main

import (
	"fmt"
	"os"

	"fjacquet/fire-report/cmd/clean"
	"fjacquet/fire-report/cmd/root"
	"fjacquet/fire-report/cmd/showconfig"
	"fjacquet/fire-report/internal/config"
)

func init() {
	// 1. Load environment variables before anything logs
	config.LoadEnv()

	// 2. Initialize root command, its LOG_LEVEL logger and subcommands
	root.Init()
	root.Cmd.AddCommand(clean.Cmd)
	root.Cmd.AddCommand(showconfig.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
