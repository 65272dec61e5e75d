package coins

import (
	"context"

	"github.com/agbru/coincount/internal/progress"
)

// DPCounter counts ordered sequences bottom-up over the partial sums:
//
//	ways[0] = 1
//	ways[s] = Σ ways[s - c]  for every denomination c ≤ s
//
// Repeated denominations are distinct picks, so [1, 1] pays 1 in two ways.
type DPCounter struct{}

// Name implements coreCounter.
func (DPCounter) Name() string { return "dp" }

// Description implements coreCounter.
func (DPCounter) Description() string { return "Ordered, bottom-up table over sums" }

// Mode implements coreCounter.
func (DPCounter) Mode() Mode { return ModeOrdered }

// CountCore implements coreCounter.
func (d DPCounter) CountCore(ctx context.Context, report progress.ProgressCallback, p Problem) (int64, error) {
	row, err := d.Row(ctx, report, p)
	if err != nil {
		return 0, err
	}
	return row[p.X], nil
}

// Row returns ways[0..x].
func (d DPCounter) Row(ctx context.Context, report progress.ProgressCallback, p Problem) ([]int64, error) {
	if err := rejectZeroCoins(p, d.Name()); err != nil {
		return nil, err
	}
	coins := p.Denominations()
	ways := make([]int64, p.X+1)
	ways[0] = 1

	steps := progress.NewStepReporter(p.X, report)
	for s := 1; s <= p.X; s++ {
		if s&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		var acc int64
		for _, c := range coins {
			if c <= s {
				acc += ways[s-c]
				if acc >= Modulus {
					acc -= Modulus
				}
			}
		}
		ways[s] = acc
		steps.Step(s)
	}
	return ways, nil
}

// MemoCounter counts ordered sequences over the sums reachable from x:
// f(s) = Σ f(s - c), with f(0) = 1. A first pass walks down from x marking
// every sum that can be reached by removing coins; a second pass fills f
// in increasing order for the marked sums only. Neither pass recurses, so
// the depth does not grow with x.
type MemoCounter struct{}

// Name implements coreCounter.
func (MemoCounter) Name() string { return "memo" }

// Description implements coreCounter.
func (MemoCounter) Description() string { return "Ordered, memoised over sums reachable from x" }

// Mode implements coreCounter.
func (MemoCounter) Mode() Mode { return ModeOrdered }

// CountCore implements coreCounter.
func (m MemoCounter) CountCore(ctx context.Context, report progress.ProgressCallback, p Problem) (int64, error) {
	if err := rejectZeroCoins(p, m.Name()); err != nil {
		return 0, err
	}
	coins := p.Denominations()
	steps := progress.NewStepReporter(2*p.X, report)

	reachable := make([]bool, p.X+1)
	reachable[p.X] = true
	for s := p.X; s > 0; s-- {
		if s&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if reachable[s] {
			for _, c := range coins {
				if c <= s {
					reachable[s-c] = true
				}
			}
		}
		steps.Step(p.X - s)
	}

	memo := make([]int64, p.X+1)
	memo[0] = 1
	for s := 1; s <= p.X; s++ {
		if s&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if reachable[s] {
			var acc int64
			for _, c := range coins {
				if c <= s {
					acc = (acc + memo[s-c]) % Modulus
				}
			}
			memo[s] = acc
		}
		steps.Step(p.X + s)
	}
	return memo[p.X], nil
}
