package cli

import (
	"github.com/runoshun/shellbridge/internal/app"
	"github.com/spf13/cobra"
)

// newMCPCommand creates the mcp command.
func newMCPCommand(c *app.Container, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the execute_command tool over MCP on stdio",
		Long: `Run a Model Context Protocol server on standard input and output.

The server exposes a single tool, execute_command, which takes a "command"
string and returns the command's standard output. Register it with an MCP
client as a stdio server:

  {"command": "shellbridge", "args": ["mcp"]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.MCPServer(version).Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}
