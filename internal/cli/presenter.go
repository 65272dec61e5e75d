package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/coincount/internal/coins"
	apperrors "github.com/agbru/coincount/internal/errors"
	"github.com/agbru/coincount/internal/format"
	"github.com/agbru/coincount/internal/metrics"
	"github.com/agbru/coincount/internal/orchestration"
	"github.com/agbru/coincount/internal/progress"
	"github.com/agbru/coincount/internal/sysmon"
	"github.com/agbru/coincount/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to the package-level DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCounters, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal output.
// Error reports go to ErrOut when it is set so that stdout only ever carries
// the count.
type CLIResultPresenter struct {
	ErrOut io.Writer
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// counter names, durations, counts and status.
// Padding is computed on the raw text so ANSI codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CountResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.SectionTitle("Comparison Summary"))

	maxNameLen := len("Counter")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sCounter%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Counter")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%sSuccess%s (%d)", ui.ColorGreen(), ui.ColorReset(), res.Count)
		}
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final count. Without the verbose option only
// the bare count is written.
func (CLIResultPresenter) PresentResult(result orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	if !opts.Verbose {
		DisplayQuietResult(out, result.Count)
		return
	}
	DisplayResult(result, opts, out)
}

// HandleError reports a counting error and returns the matching exit code.
func (p CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if p.ErrOut != nil {
		out = p.ErrOut
	}
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// TablePresenter presents the whole DP row instead of the bare count.
type TablePresenter struct {
	CLIResultPresenter
	Row []int64
}

// PresentResult writes the DP row, preceded by the verbose result block
// when requested.
func (p TablePresenter) PresentResult(result orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Verbose {
		DisplayResult(result, opts, out)
	}
	DisplayTable(out, p.Row, opts.Verbose)
}

// CLIColorProvider implements apperrors.ColorProvider with the current theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// resultLabel names the quantity that was counted, e.g. "ways(x=4)".
func resultLabel(mode coins.Mode, x int) string {
	if mode == coins.ModeCombinations {
		return fmt.Sprintf("combinations(x=%d)", x)
	}
	return fmt.Sprintf("ways(x=%d)", x)
}

// DisplayResult writes the verbose result block: the counter that produced
// it, its duration, optional details and the final "label = count" line.
func DisplayResult(result orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.SectionTitle("Result"))
	fmt.Fprintf(out, "Counter: %s%s%s, mode %s, computed in %s%s%s.\n",
		ui.ColorGreen(), result.Name, ui.ColorReset(), opts.Mode,
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	if opts.Details {
		fmt.Fprintf(out, "Problem: n=%d, x=%d, table of %d cells (~%s).\n",
			opts.Problem.N, opts.Problem.X, opts.Problem.X+1,
			format.FormatBytes(metrics.EstimateTableBytes(opts.Problem.X)))
		fmt.Fprintf(out, "Modulus: %d\n", coins.Modulus)
	}
	fmt.Fprintln(out, ui.ResultLine(resultLabel(opts.Mode, opts.Problem.X), fmt.Sprint(result.Count)))
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}

// DisplaySystemStats shows the system load observed before counting starts.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "System load: %s.\n", stats)
}
