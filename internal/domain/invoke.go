package domain

import (
	"encoding/json"
	"fmt"
)

// InvokeRequest is one named-command call received from a host.
// ID is echoed back untouched and may be any JSON value.
type InvokeRequest struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Validate ensures the request names a command.
func (r InvokeRequest) Validate() error {
	if r.Cmd == "" {
		return fmt.Errorf("%w: cmd is required", ErrInvalidArguments)
	}
	return nil
}

// InvokeResponse answers one InvokeRequest. Exactly one of Ok or Error is set.
type InvokeResponse struct {
	ID    json.RawMessage `json:"id"`
	Ok    json.RawMessage `json:"ok,omitempty"`
	Error string          `json:"error,omitempty"`
}

// ExecuteCommandName is the dispatcher name of the command-execution handler.
const ExecuteCommandName = "execute_command"

// ExecuteCommandArgs is the argument object of the execute_command handler.
type ExecuteCommandArgs struct {
	Command *string `json:"command"`
}
