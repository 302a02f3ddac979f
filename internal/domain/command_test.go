package domain

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellConfig_Argv(t *testing.T) {
	s := ShellConfig{Program: "sh", Args: []string{"-c"}}

	argv := s.Argv("echo a; echo b")

	assert.Equal(t, []string{"-c", "echo a; echo b"}, argv)
	// Args must not be aliased by Argv
	assert.Equal(t, []string{"-c"}, s.Args)
}

func TestShellConfig_Argv_NoArgs(t *testing.T) {
	s := ShellConfig{Program: "bash"}
	assert.Equal(t, []string{"script.sh"}, s.Argv("script.sh"))
}

func TestDefaultShell(t *testing.T) {
	s := DefaultShell()
	if runtime.GOOS == "windows" {
		assert.Equal(t, "cmd", s.Program)
		assert.Equal(t, []string{"/C"}, s.Args)
		return
	}
	assert.Equal(t, "sh", s.Program)
	assert.Equal(t, []string{"-c"}, s.Args)
}

func TestNewExecResult(t *testing.T) {
	t.Run("success keeps output", func(t *testing.T) {
		r := NewExecResult("hello\n", nil)
		assert.False(t, r.Failed())
		assert.Equal(t, "hello\n", r.Output)
	})

	t.Run("empty output is still success", func(t *testing.T) {
		r := NewExecResult("", nil)
		assert.False(t, r.Failed())
	})

	t.Run("error becomes description", func(t *testing.T) {
		r := NewExecResult("", &ExecError{Err: os.ErrPermission})
		assert.True(t, r.Failed())
		assert.Equal(t, os.ErrPermission.Error(), r.Err)
	})
}

func TestExecError(t *testing.T) {
	inner := errors.New("fork/exec /bin/nope: no such file or directory")
	err := &ExecError{Err: inner}

	assert.Equal(t, inner.Error(), err.Error())
	assert.ErrorIs(t, err, inner)

	var target *ExecError
	assert.ErrorAs(t, error(err), &target)

	assert.NotEmpty(t, (&ExecError{}).Error())
}
