// Package mcpserver exposes command execution as a Model Context Protocol tool.
package mcpserver

import (
	"context"
	"io"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/usecase"
)

const serverInstructions = "Use execute_command to run a shell command line on this machine. " +
	"The command runs through the system shell with full shell syntax. " +
	"The result is the command's standard output; its exit status and standard error are not reported."

// Server wraps an MCP server with the execute_command tool registered.
type Server struct {
	server *mcpserver.MCPServer
	exec   *usecase.ExecuteCommand
	logger domain.Logger
}

// New creates a new MCP server backed by the ExecuteCommand use case.
func New(exec *usecase.ExecuteCommand, logger domain.Logger, version string) *Server {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	s := mcpserver.NewMCPServer(
		"shellbridge",
		version,
		mcpserver.WithInstructions(serverInstructions),
	)

	srv := &Server{
		server: s,
		exec:   exec,
		logger: logger,
	}
	srv.registerTools()
	return srv
}

func (s *Server) registerTools() {
	executeCommand := gomcp.NewTool(domain.ExecuteCommandName,
		gomcp.WithDescription(
			"Run a shell command line and return its standard output as text. "+
				"A non-zero exit status is not an error; only a failure to start the shell is.",
		),
		gomcp.WithString("command",
			gomcp.Required(),
			gomcp.Description("The command line, passed verbatim to the shell."),
		),
		gomcp.WithDestructiveHintAnnotation(true),
	)
	s.server.AddTool(executeCommand, s.handleExecuteCommand)
}

// handleExecuteCommand runs the command line. Execution failures are tool
// errors, not protocol errors.
func (s *Server) handleExecuteCommand(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	command, err := req.RequireString("command")
	if err != nil {
		return gomcp.NewToolResultError("missing required parameter: command"), nil
	}

	out, err := s.exec.Execute(ctx, usecase.ExecuteCommandInput{Command: command})
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("mcp", "tool call "+out.InvocationID+" answered")
	return gomcp.NewToolResultText(out.Output), nil
}

// Serve speaks MCP over r and w until r is closed or ctx is canceled.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	return mcpserver.NewStdioServer(s.server).Listen(ctx, r, w)
}
