package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClearCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"clear", true},
		{"  CLEAR  ", true},
		{"Clear", true},
		{"clear all", false},
		{"echo clear", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClearCommand(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t "))
	assert.False(t, IsBlank(" ls "))
}

func TestResultLine(t *testing.T) {
	out := ResultLine(ExecResult{Output: "a\nb\n"})
	assert.Equal(t, LineOutput, out.Kind)
	assert.Equal(t, "a\nb\n", out.Text)

	errLine := ResultLine(ExecResult{Err: "permission denied"})
	assert.Equal(t, LineError, errLine.Kind)
	assert.Equal(t, "Error: permission denied", errLine.Text)
}

func TestInputLine(t *testing.T) {
	line := InputLine("> ", "ls -la")
	assert.Equal(t, LineInput, line.Kind)
	assert.Equal(t, "> ls -la", line.Text)
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "input", LineInput.String())
	assert.Equal(t, "output", LineOutput.String())
	assert.Equal(t, "error", LineError.String())
	assert.Equal(t, "unknown", LineKind(42).String())
}
