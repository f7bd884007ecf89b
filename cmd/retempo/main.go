package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grooveward/retempo/internal/batch"
	"github.com/grooveward/retempo/internal/cli"
	"github.com/grooveward/retempo/internal/config"
	"github.com/grooveward/retempo/internal/ffmpeg"
	"github.com/grooveward/retempo/internal/logging"
	"github.com/grooveward/retempo/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version   bool     `short:"v" help:"Show version information"`
	Config    string   `short:"c" type:"path" default:"retempo.config.env" help:"Path to settings file"`
	Bpm       *int     `short:"b" help:"Target tempo in BPM"`
	Out       *string  `short:"o" help:"Output directory"`
	Overwrite *bool    `help:"Replace existing output files instead of skipping"`
	Flat      *bool    `help:"Name outputs from the file name only, not the full path"`
	Label     *string  `short:"l" help:"Extra label appended to every output name"`
	Plain     bool     `help:"Print progress lines instead of the full-screen UI"`
	Logs      bool     `help:"Save a run report into the output directory"`
	Paths     []string `arg:"" name:"paths" help:"Audio files or directories to convert" type:"existingpath" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("retempo"),
		kong.Description("Batch BPM converter for loops and samples"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if len(cliArgs.Paths) == 0 {
		cli.PrintError("No input files or directories specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	settings, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	applyOverrides(&settings, cliArgs)

	// Persist the effective settings so the next run starts from them.
	if err := config.Save(cliArgs.Config, settings); err != nil {
		cli.PrintError(err.Error())
	}

	files, err := batch.Discover(cliArgs.Paths)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if len(files) == 0 {
		cli.PrintError("No audio files found in the given paths")
		os.Exit(1)
	}

	converter := ffmpeg.NewConverter()
	runner := batch.NewRunner(converter, converter)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var result batch.Result
	var runErr error
	if cliArgs.Plain {
		result, runErr = runPlain(runCtx, runner, files, settings)
	} else {
		result, runErr = runTUI(runCtx, stop, runner, files, settings)
	}

	if cliArgs.Logs {
		reportPath := filepath.Join(settings.OutputDir, logging.DefaultReportFile)
		data := logging.ReportData{
			TargetBPM: settings.TargetBPM,
			OutputDir: settings.OutputDir,
			StartTime: start,
			EndTime:   time.Now(),
			Result:    result,
			RunErr:    runErr,
		}
		if err := logging.GenerateReport(reportPath, data); err != nil {
			cli.PrintError(fmt.Sprintf("Failed to write run report: %v", err))
		}
	}

	if runErr != nil {
		cli.PrintError(runErr.Error())
		os.Exit(1)
	}
	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("✓ %d converted, %d skipped", result.Processed, result.Skipped)))
}

// runPlain converts without the full-screen UI, one log line per event.
func runPlain(ctx context.Context, runner *batch.Runner, files []string, settings config.Settings) (batch.Result, error) {
	events := batch.Events{
		Message: func(line string) { fmt.Println(line) },
	}
	return runner.Run(ctx, files, settings, events)
}

// runTUI converts behind a Bubbletea program, feeding runner events into the
// UI from a worker goroutine. Quitting the UI cancels the run between files.
func runTUI(ctx context.Context, cancel context.CancelFunc, runner *batch.Runner, files []string, settings config.Settings) (batch.Result, error) {
	model := ui.NewModel(files, settings.TargetBPM)
	p := tea.NewProgram(model, tea.WithAltScreen())

	type outcome struct {
		result batch.Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		events := batch.Events{
			FileStart: func(i int, _ string) {
				p.Send(ui.FileStartMsg{FileIndex: i})
			},
			FileDone: func(i int, fr batch.FileResult) {
				p.Send(ui.FileDoneMsg{FileIndex: i, Result: fr})
			},
			Progress: func(pct int) {
				p.Send(ui.ProgressMsg{Percent: pct})
			},
			Message: func(line string) {
				p.Send(ui.LogMsg{Line: line})
			},
		}
		result, err := runner.Run(ctx, files, settings, events)
		done <- outcome{result, err}
		p.Send(ui.DoneMsg{Result: result, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
	}

	// The user may have quit mid-run; stop the worker between files and wait
	// for the file in flight to finish.
	cancel()
	out := <-done
	return out.result, out.err
}

// applyOverrides layers explicit flags over the persisted settings.
func applyOverrides(s *config.Settings, args *CLI) {
	if args.Bpm != nil {
		s.TargetBPM = *args.Bpm
	}
	if args.Out != nil {
		s.OutputDir = *args.Out
	}
	if args.Overwrite != nil {
		s.Overwrite = *args.Overwrite
	}
	if args.Flat != nil {
		s.FlattenNames = *args.Flat
	}
	if args.Label != nil {
		s.ExtraLabel = *args.Label
	}
}
