// Package executor runs command lines through the system shell and captures
// their standard output.
package executor

import (
	"bytes"
	"errors"
	"io"
	"os/exec"

	"github.com/runoshun/shellbridge/internal/domain"
)

// Client implements domain.CommandExecutor interface.
// Fields are ordered to minimize memory padding.
type Client struct {
	stderr io.Writer
	shell  domain.ShellConfig
}

// Option configures a Client.
type Option func(*Client)

// WithStderr sends the child's standard error to w instead of discarding it.
func WithStderr(w io.Writer) Option {
	return func(c *Client) {
		c.stderr = w
	}
}

// NewClient creates a command executor that runs command lines with shell.
// An empty shell program falls back to the platform default.
func NewClient(shell domain.ShellConfig, opts ...Option) *Client {
	if shell.Program == "" {
		shell = domain.DefaultShell()
	}
	c := &Client{shell: shell}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Shell returns the interpreter the client launches.
func (c *Client) Shell() domain.ShellConfig {
	return c.shell
}

// Execute runs command with the shell, waits for it to exit, and returns its
// standard output decoded as UTF-8. The exit status is ignored; only a
// failure to start, wait on, or read from the process is an error.
func (c *Client) Execute(command string) (string, error) {
	var stdout bytes.Buffer

	// #nosec G204 - the command line is caller-supplied by contract
	cmd := exec.Command(c.shell.Program, c.shell.Argv(command)...)
	cmd.Stdout = &stdout
	cmd.Stderr = c.stderr // nil discards to the null device

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &domain.ExecError{Err: err}
		}
	}

	return DecodeLossy(stdout.Bytes()), nil
}
