package cli

import (
	"fmt"

	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the invocation log",
		Long: `Show the invocation log written under the global config directory.

Each executed command line is logged with an invocation ID, its duration and
the size of its output. Use -n to show only the last lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				Lines: lines,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
