package ui

import (
	"github.com/grooveward/retempo/internal/batch"
)

// FileStartMsg indicates the runner picked up the next file. The file itself
// is already known to the model through its queue index.
type FileStartMsg struct {
	FileIndex int
}

// FileDoneMsg carries a file's terminal state.
type FileDoneMsg struct {
	FileIndex int
	Result    batch.FileResult
}

// ProgressMsg is the overall completion percentage, 0 to 100.
type ProgressMsg struct {
	Percent int
}

// LogMsg is one line for the run log pane.
type LogMsg struct {
	Line string
}

// DoneMsg indicates the whole run finished.
type DoneMsg struct {
	Result batch.Result
	Err    error
}
