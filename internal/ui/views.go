package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRunView renders the main conversion view.
func renderRunView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderFileQueue(m))
	b.WriteString("\n")

	b.WriteString(renderOverallProgress(m))
	b.WriteString("\n\n")

	b.WriteString(renderLog(m))

	return b.String()
}

// renderHeader renders the application header.
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#A40000")).
		Render("Retempo 🥁 - Batch BPM Converter")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Converting %d file(s) to %d BPM", len(m.Files), m.TargetBPM))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status.
func renderFileQueue(m Model) string {
	var b strings.Builder

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFileEntry renders a single file entry in the queue.
func renderFileEntry(file FileEntry) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusConverted:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s → %s\n   %s",
			icon, fileName, filepath.Base(file.OutputPath), file.Detail)

	case StatusConverting:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n   Converting...", icon, fileName)

	case StatusError:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %s", icon, fileName, file.Detail)

	case StatusSkipped:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("-")
		return fmt.Sprintf(" %s %s\n   Skipped: %s", icon, fileName, file.Detail)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// renderProgressBar renders a progress bar for a 0-100 percentage.
func renderProgressBar(percent int, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d%%", bar, percent)
}

// renderOverallProgress renders the overall progress footer.
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder
	content.WriteString(renderProgressBar(m.Percent, 40))
	content.WriteString("\n")

	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
		content.WriteString(fmt.Sprintf("File %d of %d | Elapsed: %.1fs",
			m.CurrentIndex+1, len(m.Files), m.Elapsed.Seconds()))
	} else {
		content.WriteString(fmt.Sprintf("%d file(s) queued", len(m.Files)))
	}

	return box.Render(content.String())
}

// renderLog renders the tail of the run log.
func renderLog(m Model) string {
	if len(m.LogLines) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	var b strings.Builder
	for _, line := range m.LogLines {
		b.WriteString(style.Render("  " + line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCompletionSummary renders the final completion summary.
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Conversion Complete!")
	if m.RunErr != nil {
		header = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			Render(fmt.Sprintf("✗ Run stopped: %v", m.RunErr))
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d converted, %d skipped in %.1fs\n",
		m.RunResult.Processed, m.RunResult.Skipped, m.Elapsed.Seconds()))

	return b.String()
}
