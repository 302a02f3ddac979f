// Package cli provides the command-line interface for shellbridge.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupRun   = "run"
	groupSetup = "setup"
)

// launchTerminalFunc is a function variable for launching the terminal, allowing it to be mocked in tests.
var launchTerminalFunc = launchTerminal

// NewRootCommand creates the root command for shellbridge.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "shellbridge",
		Short: "Run shell command lines and capture their output",
		Long: `shellbridge runs arbitrary shell command lines through the system shell
and returns their standard output as text.

Run without arguments to open the interactive terminal, use "exec" for a
single command line, or "serve" to accept requests from a host process.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				printWarning(cmd.ErrOrStderr(), w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTerminalFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupRun, Title: "Run Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	execCmd := newExecCommand(c)
	execCmd.GroupID = groupRun

	serveCmd := newServeCommand(c)
	serveCmd.GroupID = groupRun

	mcpCmd := newMCPCommand(c, version)
	mcpCmd.GroupID = groupRun

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		execCmd,
		serveCmd,
		mcpCmd,
		configCmd,
		logsCmd,
	)

	return root
}

// launchTerminal runs the interactive terminal until the user quits.
func launchTerminal(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
