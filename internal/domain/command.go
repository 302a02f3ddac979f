// Package domain contains the core types and ports of shellbridge.
package domain

import "runtime"

// ExecResult is the serialisable outcome of one invocation.
// Exactly one of Output or Err is meaningful: Err is non-empty only when the
// process could not be launched, waited on, or read from.
type ExecResult struct {
	Output string `json:"ok,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Failed reports whether the result carries a failure description.
func (r ExecResult) Failed() bool {
	return r.Err != ""
}

// NewExecResult converts an executor return pair into an ExecResult.
func NewExecResult(output string, err error) ExecResult {
	if err != nil {
		return ExecResult{Err: err.Error()}
	}
	return ExecResult{Output: output}
}

// ShellConfig selects the interpreter that runs command lines.
// The command line is appended to Args as the final argument.
type ShellConfig struct {
	Program string   `toml:"program,omitempty" yaml:"program,omitempty"`
	Args    []string `toml:"args,omitempty" yaml:"args,omitempty"`
}

// DefaultShell returns the platform's system shell invocation.
func DefaultShell() ShellConfig {
	if runtime.GOOS == "windows" {
		return ShellConfig{Program: "cmd", Args: []string{"/C"}}
	}
	return ShellConfig{Program: "sh", Args: []string{"-c"}}
}

// Argv returns the full argument vector (excluding Program) for a command line.
func (s ShellConfig) Argv(command string) []string {
	argv := make([]string, 0, len(s.Args)+1)
	argv = append(argv, s.Args...)
	return append(argv, command)
}
