package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/coincount/internal/coins"
	"github.com/agbru/coincount/internal/progress"
)

// CountResult encapsulates the outcome of a single counter execution.
// It serves as the shared domain type between orchestration and presentation layers.
type CountResult struct {
	// Name is the registry name of the counter (e.g., "dp").
	Name string
	// Count is the computed number of ways modulo coins.Modulus. Zero if Err is set.
	Count int64
	// Duration is the time taken to complete the count.
	Duration time.Duration
	// Err contains any error that occurred during the count.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Problem coins.Problem
	Mode    coins.Mode
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying counting progress.
// This interface decouples the orchestration layer from the presentation layer:
// implementations draw spinners or bars while orchestration only feeds the channel.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCounters int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCounters int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	f(wg, progressChan, numCounters, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting counting results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CountResult, out io.Writer)
	// PresentResult displays the final count.
	PresentResult(result CountResult, opts PresentationOptions, out io.Writer)
	// HandleError reports err and returns the exit code to use.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// RunObserver receives one notification per counter execution and one per
// detected mismatch. metrics.Recorder implements it.
type RunObserver interface {
	ObserveRun(counter string, count int64, d time.Duration, err error)
	ObserveMismatch()
}

// NopObserver ignores every observation.
type NopObserver struct{}

// ObserveRun implements RunObserver.
func (NopObserver) ObserveRun(string, int64, time.Duration, error) {}

// ObserveMismatch implements RunObserver.
func (NopObserver) ObserveMismatch() {}
