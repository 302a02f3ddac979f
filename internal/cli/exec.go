package cli

import (
	"io"
	"strings"

	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/usecase"
	"github.com/spf13/cobra"
)

// newExecCommand creates the exec command.
func newExecCommand(c *app.Container) *cobra.Command {
	var showStderr bool

	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run a command line and print its standard output",
		Long: `Run a command line through the configured shell and print its standard output.

All arguments are joined with single spaces into one command line, so shell
syntax (pipes, redirection, expansion) works when quoted:

  shellbridge exec 'ls -la | wc -l'

The command's exit status is not reported: a command that exits non-zero
still prints whatever it wrote to standard output. Only a failure to launch
the shell is an error. Standard error is discarded unless --stderr is given.`,
		Example: `  shellbridge exec echo hello
  shellbridge exec 'echo a; echo b'
  shellbridge exec --stderr 'make build'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container := c
			if showStderr {
				container = c.WithStderr(cmd.ErrOrStderr())
			}

			out, err := container.ExecuteCommandUseCase().Execute(cmd.Context(), usecase.ExecuteCommandInput{
				Command: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = io.WriteString(cmd.OutOrStdout(), out.Output)
			return nil
		},
	}

	// Everything after the first argument belongs to the command line
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&showStderr, "stderr", false, "Pass the command's standard error through instead of discarding it")

	return cmd
}
