package cli

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExecTestContainer(exec *testutil.MockCommandExecutor) *app.Container {
	return app.NewWithDeps(app.Config{}, nil, exec, testutil.NewMockLogger(), nil)
}

func TestExecCommand_PrintsOutput(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Output = "hello\n"

	cmd := newExecCommand(newExecTestContainer(exec))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"echo", "hello"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, []string{"echo hello"}, exec.Calls())
}

func TestExecCommand_ArgsJoined(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "single quoted line", args: []string{"echo a; echo b"}, want: "echo a; echo b"},
		{name: "flags after command belong to it", args: []string{"ls", "-la", "--color"}, want: "ls -la --color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := testutil.NewMockCommandExecutor()
			cmd := newExecCommand(newExecTestContainer(exec))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, []string{tt.want}, exec.Calls())
		})
	}
}

func TestExecCommand_NoArgs(t *testing.T) {
	cmd := newExecCommand(newExecTestContainer(testutil.NewMockCommandExecutor()))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.Error(t, err)
}

func TestExecCommand_LaunchFailure(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Err = &domain.ExecError{Err: errors.New("exec: \"sh\": executable file not found in $PATH")}

	cmd := newExecCommand(newExecTestContainer(exec))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"ls"})

	err := cmd.Execute()

	require.Error(t, err)
	var execErr *domain.ExecError
	assert.ErrorAs(t, err, &execErr)
	assert.Empty(t, stdout.String())
}

func TestExecCommand_Stderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	tests := []struct {
		name       string
		wantStderr string
		args       []string
	}{
		{name: "discarded by default", args: []string{"echo out; echo err >&2"}, wantStderr: ""},
		{name: "passed through with flag", args: []string{"--stderr", "echo out; echo err >&2"}, wantStderr: "err\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := app.NewWithConfigDir(t.TempDir(), "")
			require.NoError(t, err)

			cmd := newExecCommand(c)
			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, "out\n", stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestExecCommand_NonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	c, err := app.NewWithConfigDir(t.TempDir(), "")
	require.NoError(t, err)

	cmd := newExecCommand(c)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"echo partial; exit 3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "partial\n", stdout.String())
}
