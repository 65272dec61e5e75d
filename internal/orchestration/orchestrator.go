package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/coincount/internal/coins"
	apperrors "github.com/agbru/coincount/internal/errors"
	"github.com/agbru/coincount/internal/logging"
	"github.com/agbru/coincount/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropping updates when
// the UI is slow to consume them.
const ProgressBufferMultiplier = 8

// Runner executes counters for one problem.
type Runner struct {
	Reporter ProgressReporter
	Observer RunObserver
	Logger   logging.Logger
}

// NewRunner returns a Runner with no-op defaults for nil collaborators.
func NewRunner(reporter ProgressReporter, observer RunObserver, logger logging.Logger) *Runner {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Runner{Reporter: reporter, Observer: observer, Logger: logger}
}

// ExecuteCounts runs every counter on p concurrently and returns their
// results in the order of counters. A failing counter does not cancel the
// others; its error is stored in its CountResult.
func (r *Runner) ExecuteCounts(ctx context.Context, counters []coins.Counter, p coins.Problem, out io.Writer) []CountResult {
	var g errgroup.Group
	results := make([]CountResult, len(counters))
	progressChan := make(chan progress.ProgressUpdate, len(counters)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go r.Reporter.DisplayProgress(&displayWg, progressChan, len(counters), out)

	for i, c := range counters {
		idx, counter := i, c
		g.Go(func() error {
			r.Logger.Debug("counter started", logging.String("counter", counter.Name()), logging.Int("index", idx))
			start := time.Now()
			count, err := counter.Count(ctx, progressChan, idx, p)
			elapsed := time.Since(start)
			results[idx] = CountResult{Name: counter.Name(), Count: count, Duration: elapsed, Err: err}
			r.Observer.ObserveRun(counter.Name(), count, elapsed, err)
			if err != nil {
				r.Logger.Error("counter failed", err, logging.String("counter", counter.Name()))
			} else {
				r.Logger.Debug("counter finished",
					logging.String("counter", counter.Name()),
					logging.Int64("count", count),
					logging.Duration("elapsed", elapsed))
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// ExecuteCounts runs counters with no progress display, metrics or logging.
func ExecuteCounts(ctx context.Context, counters []coins.Counter, p coins.Problem) []CountResult {
	return NewRunner(nil, nil, nil).ExecuteCounts(ctx, counters, p, io.Discard)
}

// AnalyzeComparisonResults processes the results of one or more counters.
//
// Results are sorted successes first, then by duration. With several
// results a comparison table is presented. If no counter succeeded the first
// error decides the exit code; if the successful counters disagree the run
// fails with ExitErrorMismatch; otherwise the fastest result is presented.
func AnalyzeComparisonResults(results []CountResult, opts PresentationOptions, presenter ResultPresenter, observer RunObserver, out io.Writer) int {
	if observer == nil {
		observer = NopObserver{}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CountResult
	var firstError error
	var firstErrorDuration time.Duration
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
				firstErrorDuration = results[i].Duration
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	if opts.Verbose && len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if firstValid == nil {
		if opts.Verbose && len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No counter could complete the count.\n")
		}
		if firstError == nil {
			return apperrors.ExitErrorGeneric
		}
		return presenter.HandleError(firstError, firstErrorDuration, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Count != firstValid.Count {
			observer.ObserveMismatch()
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The counters disagree (%s=%d, %s=%d).\n",
				firstValid.Name, firstValid.Count, res.Name, res.Count)
			return apperrors.ExitErrorMismatch
		}
	}

	if opts.Verbose && len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}

// BestResult returns the fastest successful result, or nil.
func BestResult(results []CountResult) *CountResult {
	var best *CountResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}
