// Package logging handles generation of run reports for conversion batches.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/grooveward/retempo/internal/batch"
)

// DefaultReportFile is the report written into the output directory when run
// logging is enabled.
const DefaultReportFile = "retempo-run.log"

// ReportData contains everything needed to generate a run report.
type ReportData struct {
	TargetBPM int
	OutputDir string
	StartTime time.Time
	EndTime   time.Time
	Result    batch.Result
	RunErr    error
}

// GenerateReport writes a plain-text run report to path.
//
// Report structure:
// 1. Header - target tempo, output directory, timestamp
// 2. Files - one line per file with its terminal state
// 3. Summary - counts and elapsed time
func GenerateReport(path string, data ReportData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeFileOutcomes(f, data.Result.Files)
	writeRunSummary(f, data)

	return nil
}

// writeSection writes a section header with title and dashed underline.
// The underline length matches the title length.
func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "Retempo Run Report")
	fmt.Fprintln(f, "==================")
	fmt.Fprintf(f, "Target tempo: %d BPM\n", data.TargetBPM)
	fmt.Fprintf(f, "Output dir:   %s\n", data.OutputDir)
	fmt.Fprintf(f, "Finished:     %s\n", data.EndTime.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(f, "")
}

func writeFileOutcomes(f *os.File, files []batch.FileResult) {
	writeSection(f, "Files")

	if len(files) == 0 {
		fmt.Fprintln(f, "No files were examined")
		fmt.Fprintln(f, "")
		return
	}

	for _, fr := range files {
		switch fr.Outcome {
		case batch.Converted:
			fmt.Fprintf(f, "✓ %s → %s\n", filepath.Base(fr.Path), filepath.Base(fr.Output))
			fmt.Fprintf(f, "    %s\n", fr.Detail)
		case batch.SkippedError:
			fmt.Fprintf(f, "✗ %s\n", filepath.Base(fr.Path))
			fmt.Fprintf(f, "    %s\n", fr.Detail)
		default:
			fmt.Fprintf(f, "- %s\n", filepath.Base(fr.Path))
			fmt.Fprintf(f, "    skipped: %s\n", fr.Detail)
		}
	}
	fmt.Fprintln(f, "")
}

func writeRunSummary(f *os.File, data ReportData) {
	writeSection(f, "Summary")

	fmt.Fprintf(f, "Converted: %d\n", data.Result.Processed)
	fmt.Fprintf(f, "Skipped:   %d\n", data.Result.Skipped)
	fmt.Fprintf(f, "Elapsed:   %s\n", formatDuration(data.EndTime.Sub(data.StartTime)))

	if data.RunErr != nil {
		fmt.Fprintf(f, "Stopped:   %v\n", data.RunErr)
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
