package domain

import "errors"

// Domain errors.
var (
	ErrConfigExists     = errors.New("config file already exists")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid command arguments")
	ErrNoLogDir         = errors.New("log directory not available")
)

// ExecError is the single failure kind of the command executor.
// It covers every OS-level failure to create, run, or read from the child
// process. Error returns the underlying description unchanged.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string {
	if e.Err == nil {
		return "command execution failed"
	}
	return e.Err.Error()
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
