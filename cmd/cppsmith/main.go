package main

import (
	"os"

	"github.com/cppsmith/cppsmith/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.BuildCmd())
	rootCmd.AddCommand(commands.TreeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
