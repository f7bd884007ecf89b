package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/grooveward/retempo/internal/config"
	"github.com/grooveward/retempo/internal/detect"
	"github.com/grooveward/retempo/internal/naming"
	"github.com/grooveward/retempo/internal/plan"
)

// ErrAlreadyRunning reports a second Run call while one is still in flight.
var ErrAlreadyRunning = errors.New("a conversion run is already in progress")

// Locator resolves the external converter binary.
type Locator interface {
	Locate() (string, error)
}

// Converter stretches src into dst by the given stage chain. Implementations
// block until done; cancellation is honored between files, not within one.
type Converter interface {
	Convert(ctx context.Context, src, dst string, stages []float64) error
}

// Outcome is the terminal state of one file in a run.
type Outcome int

const (
	// Converted means the output file was written.
	Converted Outcome = iota
	// SkippedNoBPM means no tempo could be read from the file's name.
	SkippedNoBPM
	// SkippedExists means the output already existed and overwriting is off.
	SkippedExists
	// SkippedError means the conversion itself failed; the run continues.
	SkippedError
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case SkippedNoBPM:
		return "no tempo in name"
	case SkippedExists:
		return "output exists"
	default:
		return "failed"
	}
}

// FileResult records what happened to a single file.
type FileResult struct {
	Path    string
	Output  string // Empty when no output path was derived.
	Outcome Outcome
	Detail  string // Human-readable note: detected tempo, skip reason or error.
}

// Result summarizes a finished run.
type Result struct {
	Processed int
	Skipped   int
	Files     []FileResult
	Log       []string
}

// Events receives run progress. Any callback may be nil.
type Events struct {
	// FileStart fires before each file is examined.
	FileStart func(index int, path string)
	// FileDone fires with the file's terminal state.
	FileDone func(index int, res FileResult)
	// Progress fires with the overall completion percentage, 0 to 100.
	Progress func(pct int)
	// Message fires once per log line.
	Message func(line string)
}

func (e Events) fileStart(index int, path string) {
	if e.FileStart != nil {
		e.FileStart(index, path)
	}
}

func (e Events) fileDone(index int, res FileResult) {
	if e.FileDone != nil {
		e.FileDone(index, res)
	}
}

func (e Events) progress(pct int) {
	if e.Progress != nil {
		e.Progress(pct)
	}
}

func (e Events) message(line string) {
	if e.Message != nil {
		e.Message(line)
	}
}

// Runner drives conversion runs. At most one run is active at a time; callers
// may share a Runner between a UI goroutine and a worker.
type Runner struct {
	locator   Locator
	converter Converter
	running   atomic.Bool
}

// NewRunner returns a runner using the given collaborators. The locator and
// converter are typically the same ffmpeg-backed value.
func NewRunner(locator Locator, converter Converter) *Runner {
	return &Runner{locator: locator, converter: converter}
}

// Run converts files sequentially according to settings, reporting through
// events. A missing converter binary aborts before any file is touched. A
// canceled context stops the run between files; the file being converted is
// always allowed to finish. The returned Result is valid even on error.
func (r *Runner) Run(ctx context.Context, files []string, settings config.Settings, events Events) (Result, error) {
	if !r.running.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRunning
	}
	defer r.running.Store(false)

	var res Result
	logf := func(format string, args ...any) {
		line := fmt.Sprintf(format, args...)
		res.Log = append(res.Log, line)
		events.message(line)
	}

	bin, err := r.locator.Locate()
	if err != nil {
		logf("converter not found: %v", err)
		return res, err
	}
	logf("using converter: %s", bin)

	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		logf("cannot create output directory: %v", err)
		return res, err
	}

	total := len(files)
	logf("converting %d file(s) to %d BPM", total, settings.TargetBPM)
	events.progress(0)

	for i, src := range files {
		if err := ctx.Err(); err != nil {
			logf("run cancelled after %d of %d file(s)", i, total)
			return res, err
		}

		events.fileStart(i, src)
		fr := r.convertOne(ctx, src, settings)
		res.Files = append(res.Files, fr)

		switch fr.Outcome {
		case Converted:
			res.Processed++
			logf("%s: %s (%s)", filepath.Base(src), fr.Outcome, fr.Detail)
		default:
			res.Skipped++
			logf("%s: skipped, %s", filepath.Base(src), fr.Detail)
		}

		events.fileDone(i, fr)
		events.progress((i + 1) * 100 / total)
	}

	if total == 0 {
		events.progress(100)
	}
	logf("done: %d converted, %d skipped", res.Processed, res.Skipped)
	return res, nil
}

// convertOne takes a single file to its terminal state.
func (r *Runner) convertOne(ctx context.Context, src string, settings config.Settings) FileResult {
	fr := FileResult{Path: src}

	det, ok := detect.Detect(src)
	if !ok {
		fr.Outcome = SkippedNoBPM
		fr.Detail = "no tempo in name"
		return fr
	}

	stages, err := plan.Stages(det.BPM, settings.TargetBPM)
	if err != nil {
		fr.Outcome = SkippedError
		fr.Detail = err.Error()
		return fr
	}

	fr.Output = naming.OutputPath(src, settings.OutputDir, settings.FlattenNames, settings.ExtraLabel)

	if !settings.Overwrite {
		if _, err := os.Stat(fr.Output); err == nil {
			fr.Outcome = SkippedExists
			fr.Detail = fmt.Sprintf("output exists: %s", filepath.Base(fr.Output))
			return fr
		}
	}

	if err := r.converter.Convert(ctx, src, fr.Output, stages); err != nil {
		fr.Outcome = SkippedError
		fr.Detail = err.Error()
		return fr
	}

	fr.Outcome = Converted
	fr.Detail = fmt.Sprintf("%d -> %d BPM, %s", det.BPM, settings.TargetBPM, det.Source)
	return fr
}
