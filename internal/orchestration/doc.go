// Package orchestration coordinates concurrent execution of coin counters
// and compares their results. It decouples business logic from presentation
// via the ProgressReporter and ResultPresenter interfaces.
package orchestration
