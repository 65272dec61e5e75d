package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/coincount/internal/cli"
	"github.com/agbru/coincount/internal/coins"
	apperrors "github.com/agbru/coincount/internal/errors"
	"github.com/agbru/coincount/internal/input"
	"github.com/agbru/coincount/internal/logging"
	"github.com/agbru/coincount/internal/metrics"
	"github.com/agbru/coincount/internal/orchestration"
	"github.com/agbru/coincount/internal/sysmon"
	"github.com/agbru/coincount/internal/ui"
)

// Run reads one problem from in (or --input), counts it and writes the
// result to out. Diagnostics and error reports go to ErrWriter. The
// returned value is the process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger := a.newLogger()
	presenter := cli.CLIResultPresenter{ErrOut: a.ErrWriter}

	counters, mode, err := orchestration.SelectCounters(a.Config.Algo, a.Config.Mode, a.Factory)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	p, err := a.readProblem(in)
	if err != nil {
		logger.Error("failed to read problem", err)
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	logger.Debug("problem read",
		logging.Int("n", p.N),
		logging.Int("x", p.X),
		logging.String("mode", mode.String()))

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, p, out)
		if a.Config.Details {
			cli.DisplaySystemStats(sysmon.Sample(), out)
		}
		cli.PrintExecutionMode(counters, mode, out)
	}

	warnIfTablesExceedMemory(logger, sysmon.Sample(), p.X, len(counters))

	var progressReporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	progressOut := io.Discard
	if a.Config.Verbose {
		progressReporter = cli.CLIProgressReporter{}
		progressOut = out
	}

	var recorder *metrics.Recorder
	var observer orchestration.RunObserver = orchestration.NopObserver{}
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		recorder.ObserveProblem(p.N, p.X)
		observer = recorder
	}

	var resultPresenter orchestration.ResultPresenter = presenter
	if a.Config.Table {
		row, err := coins.Table(ctx, mode, p, nil)
		if err != nil {
			return presenter.HandleError(err, 0, a.ErrWriter)
		}
		resultPresenter = cli.TablePresenter{CLIResultPresenter: presenter, Row: row}
	}

	start := time.Now()
	runner := orchestration.NewRunner(progressReporter, observer, logger)
	results := runner.ExecuteCounts(ctx, counters, p, progressOut)
	logger.Info("counting finished",
		logging.Int("counters", len(counters)),
		logging.Duration("elapsed", time.Since(start)))

	opts := orchestration.PresentationOptions{
		Problem: p,
		Mode:    mode,
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, opts, resultPresenter, observer, out)

	if best := orchestration.BestResult(results); best != nil && exitCode == apperrors.ExitSuccess {
		if err := cli.WriteResultToFile(*best, opts, cli.OutputConfig{OutputFile: a.Config.OutputFile}); err != nil {
			logger.Error("failed to save result", err, logging.String("path", a.Config.OutputFile))
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			exitCode = apperrors.ExitErrorGeneric
		} else if a.Config.OutputFile != "" && a.Config.Verbose {
			cli.DisplaySavedFile(out, a.Config.OutputFile)
		}
	}

	if a.Config.Verbose && a.Config.Details {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Error("failed to write metrics", err, logging.String("path", a.Config.MetricsFile))
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}

	return exitCode
}

// warnIfTablesExceedMemory logs a warning when the DP tables of numCounters
// counters for target x do not fit in the free memory reported by stats.
// It reports whether the warning was emitted.
func warnIfTablesExceedMemory(logger logging.Logger, stats sysmon.Stats, x, numCounters int) bool {
	tableBytes := metrics.EstimateTableBytes(x) * uint64(numCounters)
	if stats.FitsInMemory(tableBytes) {
		return false
	}
	logger.Warn("DP tables may exceed free memory",
		logging.Uint64("bytes", tableBytes),
		logging.Int("counters", numCounters),
		logging.String("system", stats.String()))
	return true
}

func (a *Application) newLogger() logging.Logger {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid log level %q, using warn.\n", a.Config.LogLevel)
		level = zerolog.WarnLevel
	}
	return logging.NewConsoleLogger(a.ErrWriter, "app", level, a.Config.NoColor)
}

// readProblem reads from --input when it is set and from in otherwise.
func (a *Application) readProblem(in io.Reader) (coins.Problem, error) {
	if a.Config.InputFile == "" {
		return input.Read(in)
	}
	f, err := os.Open(a.Config.InputFile)
	if err != nil {
		return coins.Problem{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return input.Read(f)
}
