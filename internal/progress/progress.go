// Package progress defines the progress types shared by counters,
// orchestration and the presentation layers.
package progress

// ProgressUpdate is a progress notification sent by a counter running under
// orchestration.
type ProgressUpdate struct {
	// CounterIndex identifies the counter within the current run.
	CounterIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives normalized progress values from a counter.
type ProgressCallback func(progress float64)

// ChannelCallback returns a callback that forwards progress to ch tagged with
// index. Sends never block: an update is dropped when the channel is full,
// except the final 1.0 which is always delivered. A nil channel yields a no-op.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(v float64) {
		update := ProgressUpdate{CounterIndex: index, Value: v}
		if v >= 1.0 {
			ch <- update
			return
		}
		select {
		case ch <- update:
		default:
		}
	}
}

// ReportThreshold is the minimum progress delta between two reports.
const ReportThreshold = 0.01

// StepReporter converts "step i of total" into throttled normalized progress.
type StepReporter struct {
	cb       ProgressCallback
	total    int
	reported float64
}

// NewStepReporter creates a reporter for total steps. A nil callback is allowed.
func NewStepReporter(total int, cb ProgressCallback) *StepReporter {
	return &StepReporter{cb: cb, total: total}
}

// Step reports that done of total steps are complete. Reports are emitted
// only when progress advanced by at least ReportThreshold.
func (r *StepReporter) Step(done int) {
	if r.cb == nil || r.total <= 0 {
		return
	}
	p := float64(done) / float64(r.total)
	if p > 1.0 {
		p = 1.0
	}
	if p-r.reported >= ReportThreshold && p < 1.0 {
		r.reported = p
		r.cb(p)
	}
}

// Done reports completion (exactly 1.0).
func (r *StepReporter) Done() {
	if r.cb != nil {
		r.reported = 1.0
		r.cb(1.0)
	}
}
