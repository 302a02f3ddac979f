package tui

import "github.com/runoshun/shellbridge/internal/domain"

// Msg is the sealed interface for all terminal messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgCommandDone is sent when a submitted command line finishes.
type MsgCommandDone struct {
	Command string
	Result  domain.ExecResult
}

func (MsgCommandDone) sealed() {}

// MsgHistorySaved is sent when a background history save finishes.
type MsgHistorySaved struct{}

func (MsgHistorySaved) sealed() {}
