package mcpserver

import (
	"context"
	"errors"
	"testing"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/testutil"
	"github.com/runoshun/shellbridge/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultText extracts the text string from a CallToolResult.
// It assumes the result contains exactly one TextContent item.
func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := gomcp.AsTextContent(result.Content[0])
	require.True(t, ok, "result content[0] is not TextContent: %T", result.Content[0])
	return tc.Text
}

func newTestServer(exec *testutil.MockCommandExecutor) *Server {
	uc := usecase.NewExecuteCommand(exec, nil, nil)
	return New(uc, testutil.NewMockLogger(), "test")
}

func TestHandleExecuteCommand(t *testing.T) {
	tests := []struct {
		args     map[string]any
		execErr  error
		name     string
		output   string
		wantText string
		wantErr  bool
	}{
		{
			name:     "returns stdout",
			args:     map[string]any{"command": "echo hello"},
			output:   "hello\n",
			wantText: "hello\n",
		},
		{
			name:     "empty output is success",
			args:     map[string]any{"command": "exit 1"},
			output:   "",
			wantText: "",
		},
		{
			name:     "launch failure is a tool error",
			args:     map[string]any{"command": "ls"},
			execErr:  &domain.ExecError{Err: errors.New("fork/exec /bin/sh: permission denied")},
			wantText: "fork/exec /bin/sh: permission denied",
			wantErr:  true,
		},
		{
			name:     "missing command",
			args:     map[string]any{},
			wantText: "missing required parameter: command",
			wantErr:  true,
		},
		{
			name:     "non-string command",
			args:     map[string]any{"command": 42},
			wantText: "missing required parameter: command",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := testutil.NewMockCommandExecutor()
			exec.Output = tt.output
			exec.Err = tt.execErr
			s := newTestServer(exec)

			req := gomcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := s.handleExecuteCommand(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantErr, result.IsError)
			assert.Equal(t, tt.wantText, resultText(t, result))
		})
	}
}

func TestHandleExecuteCommand_PassesCommandVerbatim(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	s := newTestServer(exec)

	req := gomcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"command": "  echo a | tr a b  "}

	_, err := s.handleExecuteCommand(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"  echo a | tr a b  "}, exec.Calls())
}
