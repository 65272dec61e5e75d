//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/coincount/internal/progress"
	"github.com/agbru/coincount/internal/ui"
)

const (
	// TableDisplayEdges is the number of DP row entries shown at each end of
	// a long row printed with --table in verbose mode.
	TableDisplayEdges = 10
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState tracks the progress of each concurrently running counter
// and computes their average.
type ProgressState struct {
	progresses  []float64
	numCounters int
}

// NewProgressState creates a ProgressState for numCounters counters.
func NewProgressState(numCounters int) *ProgressState {
	return &ProgressState{
		progresses:  make([]float64, numCounters),
		numCounters: numCounters,
	}
}

// Update records a new progress value for the counter at index.
// Out of range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the average progress across all counters.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCounters == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCounters)
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

func progressSuffix(avg float64) string {
	return fmt.Sprintf(" Counting... %6.2f%% [%s]", avg*100, progressBar(avg, ProgressBarWidth))
}

// DisplayProgress shows a spinner with the average progress of numCounters
// counters until progressChan is closed, then calls wg.Done.
// With zero counters the channel is drained and nothing is drawn.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	defer wg.Done()
	if numCounters <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numCounters)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(0))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix(state.CalculateAverage()))
				s.Stop()
				fmt.Fprintf(out, "%sCounting finished.%s\n", ui.ColorGreen(), ui.ColorReset())
				return
			}
			state.Update(update.CounterIndex, update.Value)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(state.CalculateAverage()))
		}
	}
}
