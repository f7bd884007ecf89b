// Package ui provides the Bubbletea terminal user interface for retempo.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grooveward/retempo/internal/batch"
)

// FileStatus represents the conversion state of a single file.
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusConverting
	StatusConverted
	StatusSkipped
	StatusError
)

// FileEntry tracks one file in the queue.
type FileEntry struct {
	InputPath  string
	OutputPath string
	Status     FileStatus
	Detail     string
}

// logTail is how many recent log lines the view keeps visible.
const logTail = 8

// Model is the Bubbletea model for a conversion run.
type Model struct {
	Files        []FileEntry
	CurrentIndex int
	TargetBPM    int

	Percent   int
	LogLines  []string
	StartTime time.Time
	Elapsed   time.Duration

	Done      bool
	RunResult batch.Result
	RunErr    error

	Width  int
	Height int
}

// NewModel creates a UI model for the given input files.
func NewModel(inputFiles []string, targetBPM int) Model {
	files := make([]FileEntry, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileEntry{InputPath: path, Status: StatusQueued}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1,
		TargetBPM:    targetBPM,
		StartTime:    time.Now(),
	}
}

// Init initializes the model. Worker messages arrive through Program.Send.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			m.Files[m.CurrentIndex].Status = StatusConverting
		}
		return m, nil

	case FileDoneMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			m.Files[msg.FileIndex] = applyResult(m.Files[msg.FileIndex], msg.Result)
		}
		return m, nil

	case ProgressMsg:
		m.Percent = msg.Percent
		m.Elapsed = time.Since(m.StartTime)
		return m, nil

	case LogMsg:
		m.LogLines = append(m.LogLines, msg.Line)
		if len(m.LogLines) > logTail {
			m.LogLines = m.LogLines[len(m.LogLines)-logTail:]
		}
		return m, nil

	case DoneMsg:
		m.Done = true
		m.RunResult = msg.Result
		m.RunErr = msg.Err
		m.Elapsed = time.Since(m.StartTime)
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderRunView(m)
}

// applyResult folds a terminal file state into its queue entry.
func applyResult(fe FileEntry, fr batch.FileResult) FileEntry {
	fe.OutputPath = fr.Output
	fe.Detail = fr.Detail

	switch fr.Outcome {
	case batch.Converted:
		fe.Status = StatusConverted
	case batch.SkippedError:
		fe.Status = StatusError
	default:
		fe.Status = StatusSkipped
	}
	return fe
}
