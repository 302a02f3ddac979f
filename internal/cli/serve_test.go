package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.ExecuteFunc = func(command string) (string, error) {
		if command == "bad" {
			return "", &domain.ExecError{Err: assert.AnError}
		}
		return command + "\n", nil
	}

	cmd := newServeCommand(newExecTestContainer(exec))
	in := strings.Join([]string{
		`{"id":1,"cmd":"execute_command","args":{"command":"one"}}`,
		`{"id":2,"cmd":"execute_command","args":{"command":"bad"}}`,
		`{"id":3,"cmd":"nope"}`,
	}, "\n") + "\n"
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	got := make(map[string]domain.InvokeResponse)
	sc := bufio.NewScanner(&stdout)
	for sc.Scan() {
		var resp domain.InvokeResponse
		require.NoError(t, json.Unmarshal(sc.Bytes(), &resp))
		got[string(resp.ID)] = resp
	}
	require.Len(t, got, 3)

	assert.JSONEq(t, `"one\n"`, string(got["1"].Ok))
	assert.Empty(t, got["1"].Error)

	assert.Empty(t, got["2"].Ok)
	assert.Equal(t, assert.AnError.Error(), got["2"].Error)

	assert.Contains(t, got["3"].Error, domain.ErrUnknownCommand.Error())
}

func TestServeCommand_RejectsArgs(t *testing.T) {
	cmd := newServeCommand(newExecTestContainer(testutil.NewMockCommandExecutor()))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
