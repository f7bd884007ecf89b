package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grooveward/retempo/internal/batch"
)

func TestGenerateReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retempo-run.log")
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	data := ReportData{
		TargetBPM: 100,
		OutputDir: "/music/output",
		StartTime: start,
		EndTime:   start.Add(95 * time.Second),
		Result: batch.Result{
			Processed: 1,
			Skipped:   2,
			Files: []batch.FileResult{
				{Path: "/in/funk_120.wav", Output: "/music/output/funk.wav", Outcome: batch.Converted, Detail: "120 -> 100 BPM, scored"},
				{Path: "/in/mystery.wav", Outcome: batch.SkippedNoBPM, Detail: "no tempo in name"},
				{Path: "/in/broken_90.wav", Outcome: batch.SkippedError, Detail: "ffmpeg: exit status 1"},
			},
		},
	}

	if err := GenerateReport(path, data); err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	report := string(raw)

	for _, want := range []string{
		"Retempo Run Report",
		"Target tempo: 100 BPM",
		"✓ funk_120.wav → funk.wav",
		"- mystery.wav",
		"✗ broken_90.wav",
		"Converted: 1",
		"Skipped:   2",
		"Elapsed:   1m 35s",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "Stopped:") {
		t.Error("report should not mention a stop reason for a clean run")
	}
}

func TestGenerateReportStoppedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retempo-run.log")
	now := time.Now()

	data := ReportData{
		TargetBPM: 128,
		OutputDir: "/out",
		StartTime: now,
		EndTime:   now.Add(2 * time.Second),
		RunErr:    os.ErrDeadlineExceeded,
	}
	if err := GenerateReport(path, data); err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	raw, _ := os.ReadFile(path)
	report := string(raw)
	if !strings.Contains(report, "No files were examined") {
		t.Errorf("empty run should say so:\n%s", report)
	}
	if !strings.Contains(report, "Stopped:") {
		t.Errorf("stopped run should record the reason:\n%s", report)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "42.0s"},
		{95 * time.Second, "1m 35s"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "2h 5m 3s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
