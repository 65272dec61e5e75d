package coins

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// countWith is a shorthand that solves (coins, x) with the named counter.
func countWith(t *testing.T, name string, coins []int, x int) (int64, bool) {
	res, err := NewDefaultFactory().MustGet(name).CountWithCallback(
		context.Background(), nil, Problem{N: len(coins), X: x, Coins: coins})
	if err != nil {
		t.Logf("%s(%v, %d) failed: %v", name, coins, x, err)
		return 0, false
	}
	return res, true
}

// bruteOrdered enumerates every ordered sequence of picks summing to x.
func bruteOrdered(coins []int, x int) int64 {
	if x == 0 {
		return 1
	}
	var total int64
	for _, c := range coins {
		if c <= x {
			total += bruteOrdered(coins, x-c)
		}
	}
	return total
}

// bruteCombinations enumerates multisets by choosing a count for each index.
func bruteCombinations(coins []int, x int) int64 {
	if len(coins) == 0 {
		if x == 0 {
			return 1
		}
		return 0
	}
	var total int64
	for used := 0; used*coins[0] <= x; used++ {
		total += bruteCombinations(coins[1:], x-used*coins[0])
	}
	return total
}

func positiveCoins() gopter.Gen {
	return gen.SliceOf(gen.IntRange(1, 12))
}

func TestOrderedCounters_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("dp agrees with memo", prop.ForAll(
		func(coins []int, x int) bool {
			a, okA := countWith(t, "dp", coins, x)
			b, okB := countWith(t, "memo", coins, x)
			return okA && okB && a == b
		},
		positiveCoins(), gen.IntRange(0, 500),
	))

	properties.Property("dp matches brute-force enumeration", prop.ForAll(
		func(coins []int, x int) bool {
			got, ok := countWith(t, "dp", coins, x)
			return ok && got == bruteOrdered(coins, x)
		},
		gen.SliceOfN(3, gen.IntRange(1, 6)), gen.IntRange(0, 14),
	))

	properties.Property("result lies in [0, M)", prop.ForAll(
		func(coins []int, x int) bool {
			got, ok := countWith(t, "dp", coins, x)
			return ok && got >= 0 && got < Modulus
		},
		positiveCoins(), gen.IntRange(0, 5000),
	))

	properties.Property("zero target has exactly one way", prop.ForAll(
		func(coins []int) bool {
			got, ok := countWith(t, "dp", coins, 0)
			return ok && got == 1
		},
		positiveCoins(),
	))

	properties.TestingRun(t)
}

func TestCombinationCounters_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("suffix agrees with knapsack on positive coins", prop.ForAll(
		func(coins []int, x int) bool {
			a, okA := countWith(t, "suffix", coins, x)
			b, okB := countWith(t, "knapsack", coins, x)
			return okA && okB && a == b
		},
		positiveCoins(), gen.IntRange(0, 500),
	))

	properties.Property("suffix matches brute-force enumeration", prop.ForAll(
		func(coins []int, x int) bool {
			got, ok := countWith(t, "suffix", coins, x)
			return ok && got == bruteCombinations(coins, x)
		},
		gen.SliceOfN(3, gen.IntRange(1, 6)), gen.IntRange(0, 20),
	))

	properties.Property("coins {1, 2} pay x in x/2+1 ways", prop.ForAll(
		func(x int) bool {
			got, ok := countWith(t, "suffix", []int{1, 2}, x)
			return ok && got == int64(x/2+1)
		},
		gen.IntRange(0, 10_000),
	))

	properties.Property("combinations never exceed ordered sequences", prop.ForAll(
		func(coins []int, x int) bool {
			combos, okC := countWith(t, "suffix", coins, x)
			ordered, okO := countWith(t, "dp", coins, x)
			return okC && okO && combos <= ordered
		},
		gen.SliceOfN(3, gen.IntRange(1, 6)), gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}

// TestTable_PrefixProperty checks that for positive coins the row computed
// for a smaller target is a prefix of the row for a larger one.
func TestTable_PrefixProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, mode := range []Mode{ModeOrdered, ModeCombinations} {
		mode := mode
		properties.Property(mode.String()+" rows are prefix-consistent", prop.ForAll(
			func(coins []int, x1, extra int) bool {
				x2 := x1 + extra
				short, err := Table(context.Background(), mode, Problem{N: len(coins), X: x1, Coins: coins}, nil)
				if err != nil {
					return false
				}
				long, err := Table(context.Background(), mode, Problem{N: len(coins), X: x2, Coins: coins}, nil)
				if err != nil {
					return false
				}
				for i := range short {
					if short[i] != long[i] {
						return false
					}
				}
				return true
			},
			positiveCoins(), gen.IntRange(0, 300), gen.IntRange(1, 300),
		))
	}

	properties.TestingRun(t)
}
