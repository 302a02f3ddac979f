// Package main is the entry point for the shellbridge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		return runWithoutContainer(err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles a broken configuration file.
// Help, version and the config template still work so the file can be fixed.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutConfig(os.Args[1:]) {
		return fmt.Errorf("failed to initialize: %w", initErr)
	}
	return cli.NewRootCommand(nil, version).Execute()
}

// canRunWithoutConfig only looks at the first argument: anything after a
// subcommand may belong to a command line passed to exec.
func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "--help", "-h", "--version", "-v":
		return true
	case "config":
		return len(args) >= 2 && args[1] == "template"
	}
	return false
}
