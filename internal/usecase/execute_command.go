// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/runoshun/shellbridge/internal/domain"
)

const logCategoryExec = "exec"

// ExecuteCommandInput contains the parameters for running a command line.
type ExecuteCommandInput struct {
	Command string // Raw command line, passed to the shell verbatim
}

// ExecuteCommandOutput contains the result of running a command line.
type ExecuteCommandOutput struct {
	InvocationID string // ULID identifying this invocation in the log
	Output       string // Captured standard output, decoded as UTF-8
}

// ExecuteCommand is the use case for running a command line and capturing
// its standard output.
type ExecuteCommand struct {
	executor domain.CommandExecutor
	logger   domain.Logger
	clock    domain.Clock
}

// NewExecuteCommand creates a new ExecuteCommand use case.
func NewExecuteCommand(
	executor domain.CommandExecutor,
	logger domain.Logger,
	clock domain.Clock,
) *ExecuteCommand {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &ExecuteCommand{
		executor: executor,
		logger:   logger,
		clock:    clock,
	}
}

// Execute runs the command line and waits for it to finish.
// The exit status of the command does not affect the result; an error is
// returned only when the process could not be run, and it is passed through
// unwrapped so its description reaches the caller verbatim.
func (uc *ExecuteCommand) Execute(_ context.Context, in ExecuteCommandInput) (*ExecuteCommandOutput, error) {
	start := uc.clock.Now()
	id := ulid.MustNew(ulid.Timestamp(start), ulid.DefaultEntropy()).String()

	uc.logger.Debug(logCategoryExec, fmt.Sprintf("%s start: %q", id, in.Command))

	output, err := uc.executor.Execute(in.Command)
	elapsed := uc.clock.Now().Sub(start)
	if err != nil {
		uc.logger.Error(logCategoryExec, fmt.Sprintf("%s failed after %s: %v", id, elapsed, err))
		return nil, err
	}

	uc.logger.Info(logCategoryExec, fmt.Sprintf("%s finished in %s (%d bytes)", id, elapsed, len(output)))

	return &ExecuteCommandOutput{
		InvocationID: id,
		Output:       output,
	}, nil
}
