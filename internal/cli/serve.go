package cli

import (
	"github.com/runoshun/shellbridge/internal/app"
	"github.com/spf13/cobra"
)

// newServeCommand creates the serve command.
func newServeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept command requests as JSON lines on stdin",
		Long: `Accept command requests from a host process as JSON lines on standard input
and write one JSON response per line to standard output.

Request:
  {"id": 1, "cmd": "execute_command", "args": {"command": "ls -la"}}

Response:
  {"id": 1, "ok": "<captured stdout>"}
  {"id": 1, "error": "<description>"}

Requests run concurrently; responses are written as each one completes and
carry the request's id. The server exits when standard input is closed and
all pending requests have been answered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.InvokeServer().Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}
