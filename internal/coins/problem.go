package coins

import (
	apperrors "github.com/agbru/coincount/internal/errors"
)

// Problem is one counting instance: pay X using the first N values of Coins.
type Problem struct {
	N     int
	X     int
	Coins []int
}

// NewProblem validates its arguments and returns a Problem holding a copy of
// the first n coin values.
func NewProblem(n, x int, coins []int) (Problem, error) {
	p := Problem{N: n, X: x, Coins: coins}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}
	p.Coins = append([]int(nil), coins[:n]...)
	return p, nil
}

// Validate rejects negative n or x, a coin list shorter than n, negative
// denominations and sums too large to tabulate. All failures unwrap to
// apperrors.ErrInvalidArgument.
func (p Problem) Validate() error {
	if p.N < 0 {
		return apperrors.NewInvalidArgument("n", "must be non-negative, got %d", p.N)
	}
	if p.X < 0 {
		return apperrors.NewInvalidArgument("x", "must be non-negative, got %d", p.X)
	}
	if p.X > MaxSum {
		return apperrors.NewInvalidArgument("x", "must not exceed %d, got %d", MaxSum, p.X)
	}
	if len(p.Coins) < p.N {
		return apperrors.NewInvalidArgument("coins", "expected %d values, got %d", p.N, len(p.Coins))
	}
	for i, c := range p.Coins[:p.N] {
		if c < 0 {
			return apperrors.NewInvalidArgument("coins", "denomination at index %d is negative (%d)", i, c)
		}
	}
	return nil
}

// Denominations returns the coin values taking part in the count.
func (p Problem) Denominations() []int {
	if p.N > len(p.Coins) {
		return p.Coins
	}
	return p.Coins[:p.N]
}

// rejectZeroCoins fails with an invalid-argument error when a denomination
// is zero. Counters whose count would be unbounded (or whose recurrence
// does not define the zero case) call it before counting.
func rejectZeroCoins(p Problem, counter string) error {
	for i, c := range p.Denominations() {
		if c == 0 {
			return apperrors.NewInvalidArgument("coins",
				"denomination at index %d is zero, which %s cannot count (unbounded repeats)", i, counter)
		}
	}
	return nil
}
