package coins

import (
	"context"

	"github.com/agbru/coincount/internal/progress"
)

// NumberOfWays returns the number of ordered sequences of picks from the
// first n coins (repetition allowed) whose values sum to x, modulo Modulus.
//
// It fails with an error wrapping apperrors.ErrInvalidArgument when n or x
// is negative, when fewer than n coins are supplied, or when a denomination
// is negative or zero (a zero coin can be repeated without bound).
func NumberOfWays(n, x int, coins []int) (int64, error) {
	p, err := NewProblem(n, x, coins)
	if err != nil {
		return 0, err
	}
	return DPCounter{}.CountCore(context.Background(), nil, p)
}

// NumberOfCombinations is NumberOfWays in ModeCombinations: it evaluates the
// suffix recurrence, so the order of picks does not matter.
func NumberOfCombinations(n, x int, coins []int) (int64, error) {
	p, err := NewProblem(n, x, coins)
	if err != nil {
		return 0, err
	}
	return SuffixCounter{}.CountCore(context.Background(), nil, p)
}

// Table returns the final DP row [0..x] for mode m. For positive coins the
// row for a smaller target is a prefix of the row for a larger one.
func Table(ctx context.Context, m Mode, p Problem, report progress.ProgressCallback) ([]int64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var rc rowCounter = DPCounter{}
	if m == ModeCombinations {
		rc = SuffixCounter{}
	}
	return rc.Row(ctx, report, p)
}
