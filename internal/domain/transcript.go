package domain

import "strings"

// LineKind classifies a transcript line.
type LineKind int

// Transcript line kinds.
const (
	LineInput LineKind = iota
	LineOutput
	LineError
)

// String returns the display name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineInput:
		return "input"
	case LineOutput:
		return "output"
	case LineError:
		return "error"
	default:
		return "unknown"
	}
}

// TranscriptLine is one entry of the terminal transcript.
type TranscriptLine struct {
	Text string
	Kind LineKind
}

// InputLine formats a submitted command line for the transcript.
func InputLine(prompt, command string) TranscriptLine {
	return TranscriptLine{Text: prompt + command, Kind: LineInput}
}

// ResultLine converts an execution result into a transcript line.
func ResultLine(r ExecResult) TranscriptLine {
	if r.Failed() {
		return TranscriptLine{Text: "Error: " + r.Err, Kind: LineError}
	}
	return TranscriptLine{Text: r.Output, Kind: LineOutput}
}

// IsClearCommand reports whether the input is the built-in "clear" command.
func IsClearCommand(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "clear")
}

// IsBlank reports whether the input has nothing to run.
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}
