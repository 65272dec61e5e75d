package coins

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/coincount/internal/progress"
)

const tracerName = "github.com/agbru/coincount/internal/coins"

// Counter is the public interface of every counting implementation.
type Counter interface {
	// Count solves p, sending progress updates tagged with index to
	// progressChan (which may be nil).
	Count(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, p Problem) (int64, error)
	// CountWithCallback solves p, reporting progress through cb (which may be nil).
	CountWithCallback(ctx context.Context, cb progress.ProgressCallback, p Problem) (int64, error)
	// Name returns the registry name of the counter.
	Name() string
	// Description is a one-line human description.
	Description() string
	// Mode returns what the counter counts.
	Mode() Mode
}

// coreCounter is implemented by the algorithms themselves. Problems handed
// to CountCore have already been validated.
type coreCounter interface {
	CountCore(ctx context.Context, report progress.ProgressCallback, p Problem) (int64, error)
	Name() string
	Description() string
	Mode() Mode
}

// rowCounter is implemented by counters that tabulate every partial sum.
type rowCounter interface {
	Row(ctx context.Context, report progress.ProgressCallback, p Problem) ([]int64, error)
}

// WaysCounter adapts a coreCounter to Counter: it validates the problem,
// traces the run and guarantees a final progress report of 1.0.
type WaysCounter struct {
	core coreCounter
}

// NewCounter wraps core in a WaysCounter.
func NewCounter(core coreCounter) Counter {
	return &WaysCounter{core: core}
}

// Name returns the wrapped counter's name.
func (c *WaysCounter) Name() string { return c.core.Name() }

// Description returns the wrapped counter's description.
func (c *WaysCounter) Description() string { return c.core.Description() }

// Mode returns the wrapped counter's mode.
func (c *WaysCounter) Mode() Mode { return c.core.Mode() }

// Count implements Counter.
func (c *WaysCounter) Count(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, p Problem) (int64, error) {
	return c.CountWithCallback(ctx, progress.ChannelCallback(progressChan, index), p)
}

// CountWithCallback implements Counter.
func (c *WaysCounter) CountWithCallback(ctx context.Context, cb progress.ProgressCallback, p Problem) (int64, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "coins.Count")
	defer span.End()
	span.SetAttributes(
		attribute.String("coins.counter", c.core.Name()),
		attribute.String("coins.mode", c.core.Mode().String()),
		attribute.Int("coins.n", p.N),
		attribute.Int("coins.x", p.X),
	)

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid problem")
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	result, err := c.core.CountCore(ctx, cb, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	if cb != nil {
		cb(1.0)
	}
	span.SetAttributes(attribute.Int64("coins.count", result))
	return result, nil
}
