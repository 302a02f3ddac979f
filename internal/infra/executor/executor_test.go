package executor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
}

func TestClient_Execute(t *testing.T) {
	skipOnWindows(t)

	client := NewClient(domain.DefaultShell())

	t.Run("executes simple echo command", func(t *testing.T) {
		output, err := client.Execute("echo hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", output)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		output, err := client.Execute("exit 1")
		require.NoError(t, err)
		assert.Equal(t, "", output)
	})

	t.Run("keeps output written before a failing exit", func(t *testing.T) {
		output, err := client.Execute("echo partial; exit 3")
		require.NoError(t, err)
		assert.Equal(t, "partial\n", output)
	})

	t.Run("command not found inside the shell is not an error", func(t *testing.T) {
		output, err := client.Execute("nonexistent-command-xyz")
		require.NoError(t, err)
		assert.Equal(t, "", output)
	})

	t.Run("honors command chaining", func(t *testing.T) {
		output, err := client.Execute("echo a; echo b")
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", output)
	})

	t.Run("honors pipes and expansion", func(t *testing.T) {
		output, err := client.Execute("X=piped; echo $X | tr a-z A-Z")
		require.NoError(t, err)
		assert.Equal(t, "PIPED\n", output)
	})

	t.Run("does not capture stderr", func(t *testing.T) {
		output, err := client.Execute("echo error >&2; echo out")
		require.NoError(t, err)
		assert.Equal(t, "out\n", output)
	})

	t.Run("replaces invalid UTF-8 bytes", func(t *testing.T) {
		output, err := client.Execute(`printf '\377\376'`)
		require.NoError(t, err)
		assert.Equal(t, "\uFFFD\uFFFD", output)
	})

	t.Run("keeps valid text around invalid bytes", func(t *testing.T) {
		output, err := client.Execute(`printf 'ok\377ok'`)
		require.NoError(t, err)
		assert.Equal(t, "ok\uFFFDok", output)
	})

	t.Run("inherits working directory", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		t.Chdir(dir)
		output, err := client.Execute("pwd -P")
		require.NoError(t, err)
		assert.Equal(t, dir, strings.TrimSpace(output))
	})

	t.Run("inherits environment", func(t *testing.T) {
		t.Setenv("SHELLBRIDGE_TEST_VAR", "from-parent")
		output, err := client.Execute("echo $SHELLBRIDGE_TEST_VAR")
		require.NoError(t, err)
		assert.Equal(t, "from-parent\n", output)
	})
}

func TestClient_Execute_MissingInterpreter(t *testing.T) {
	client := NewClient(domain.ShellConfig{Program: "/nonexistent/shell-xyz", Args: []string{"-c"}})

	output, err := client.Execute("echo hello")

	require.Error(t, err)
	assert.Empty(t, output)
	assert.NotEmpty(t, err.Error())

	var execErr *domain.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, err.Error(), "/nonexistent/shell-xyz")
}

func TestClient_Execute_WithStderr(t *testing.T) {
	skipOnWindows(t)

	var stderr bytes.Buffer
	client := NewClient(domain.DefaultShell(), WithStderr(&stderr))

	output, err := client.Execute("echo out; echo err >&2")

	require.NoError(t, err)
	assert.Equal(t, "out\n", output)
	assert.Equal(t, "err\n", stderr.String())
}

func TestClient_Execute_Concurrent(t *testing.T) {
	skipOnWindows(t)

	client := NewClient(domain.DefaultShell())

	const n = 8
	var wg sync.WaitGroup
	outputs := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = client.Execute(fmt.Sprintf("sleep 0.05; echo %d", i))
		}(i)
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("%d\n", i), outputs[i])
	}
}

func TestNewClient(t *testing.T) {
	t.Run("keeps configured shell", func(t *testing.T) {
		shell := domain.ShellConfig{Program: "bash", Args: []string{"-c"}}
		client := NewClient(shell)
		assert.Equal(t, shell, client.Shell())
	})

	t.Run("empty program falls back to default", func(t *testing.T) {
		client := NewClient(domain.ShellConfig{})
		assert.Equal(t, domain.DefaultShell(), client.Shell())
	})
}
