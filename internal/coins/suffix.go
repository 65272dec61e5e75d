package coins

import (
	"context"

	"github.com/agbru/coincount/internal/progress"
)

// SuffixCounter is the suffix recurrence over denomination indices. Walking
// ind from n-1 down to 0 with c = coins[ind]:
//
//	notTake = next[s]
//	take    = curr[s-c] if c ≤ s, else 0
//	curr[s] = (take + notTake) mod M
//
// then next takes the values of curr. next starts as [1, 0, 0, ...] and the
// answer is next[x]. curr is never cleared, so a zero-valued coin reads the
// previous row at the same sum.
type SuffixCounter struct{}

// Name implements coreCounter.
func (SuffixCounter) Name() string { return "suffix" }

// Description implements coreCounter.
func (SuffixCounter) Description() string { return "Combinations, rolling suffix rows" }

// Mode implements coreCounter.
func (SuffixCounter) Mode() Mode { return ModeCombinations }

// CountCore implements coreCounter.
func (sc SuffixCounter) CountCore(ctx context.Context, report progress.ProgressCallback, p Problem) (int64, error) {
	row, err := sc.Row(ctx, report, p)
	if err != nil {
		return 0, err
	}
	return row[p.X], nil
}

// Row returns next[0..x] after every denomination has been processed.
func (SuffixCounter) Row(ctx context.Context, report progress.ProgressCallback, p Problem) ([]int64, error) {
	coins := p.Denominations()
	next := make([]int64, p.X+1)
	curr := make([]int64, p.X+1)
	next[0] = 1

	steps := progress.NewStepReporter(len(coins), report)
	for ind := len(coins) - 1; ind >= 0; ind-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := coins[ind]
		for s := 0; s <= p.X; s++ {
			notTake := next[s]
			var take int64
			if c <= s {
				take = curr[s-c]
			}
			curr[s] = (take + notTake) % Modulus
		}
		copy(next, curr)
		steps.Step(len(coins) - ind)
	}
	return next, nil
}

// KnapsackCounter counts combinations with a single row updated in place,
// the classic unbounded-knapsack loop. It agrees with SuffixCounter on
// positive denominations and rejects zero-valued ones.
type KnapsackCounter struct{}

// Name implements coreCounter.
func (KnapsackCounter) Name() string { return "knapsack" }

// Description implements coreCounter.
func (KnapsackCounter) Description() string { return "Combinations, in-place unbounded knapsack" }

// Mode implements coreCounter.
func (KnapsackCounter) Mode() Mode { return ModeCombinations }

// CountCore implements coreCounter.
func (k KnapsackCounter) CountCore(ctx context.Context, report progress.ProgressCallback, p Problem) (int64, error) {
	if err := rejectZeroCoins(p, k.Name()); err != nil {
		return 0, err
	}
	coins := p.Denominations()
	ways := make([]int64, p.X+1)
	ways[0] = 1

	steps := progress.NewStepReporter(len(coins), report)
	for i := len(coins) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c := coins[i]
		for s := c; s <= p.X; s++ {
			ways[s] = (ways[s] + ways[s-c]) % Modulus
		}
		steps.Step(len(coins) - i)
	}
	return ways[p.X], nil
}
