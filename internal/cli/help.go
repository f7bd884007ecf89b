package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFA500")).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Italic(true)
)

// StyledHelpPrinter renders --help with the retempo palette instead of kong's
// default layout.
func StyledHelpPrinter(options kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("Retempo 🥁"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render("Batch BPM converter for loops and samples"))
		sb.WriteString("\n")

		writeHelpSection(&sb, "Usage:",
			fmt.Sprintf("%s [flags] <paths> ...", ctx.Model.Name))

		if lines := positionalLines(ctx); len(lines) > 0 {
			writeHelpSection(&sb, "Arguments:", lines...)
		}
		writeHelpSection(&sb, "Flags:", flagLines(ctx)...)

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

// writeHelpSection emits a styled section title followed by indented lines.
func writeHelpSection(sb *strings.Builder, title string, lines ...string) {
	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func positionalLines(ctx *kong.Context) []string {
	var lines []string
	for _, pos := range ctx.Model.Node.Positional {
		line := helpArgStyle.Render(pos.Summary())
		if pos.Help != "" {
			line += "  " + pos.Help
		}
		lines = append(lines, line)
	}
	return lines
}

func flagLines(ctx *kong.Context) []string {
	// kong only exposes the help flag through its parent group, so it is
	// rendered up front.
	lines := []string{helpFlagStyle.Render("-h, --help") + "  Show context-sensitive help."}

	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" {
			continue
		}

		name := "--" + f.Name
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, %s", f.Short, name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		line := helpFlagStyle.Render(name)
		if f.Help != "" {
			line += "  " + f.Help
		}
		if def := f.FormatPlaceHolder(); def != "" {
			line += " " + helpDefaultStyle.Render("(default: "+def+")")
		}
		lines = append(lines, line)
	}
	return lines
}
