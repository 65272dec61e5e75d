package coins

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/coincount/internal/errors"
)

func TestNumberOfWays_Scenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		n, x  int
		coins []int
		want  int64
	}{
		{"compositions of 4 from 1,2,3", 3, 4, []int{1, 2, 3}, 7},
		{"single coin equal to target", 1, 5, []int{5}, 1},
		{"unreachable target", 2, 3, []int{2, 4}, 0},
		{"zero target", 3, 0, []int{1, 2, 3}, 1},
		{"no coins zero target", 0, 0, nil, 1},
		{"no coins positive target", 0, 7, []int{}, 0},
		{"duplicate denominations are distinct picks", 2, 2, []int{1, 1}, 4},
		{"only first n coins are used", 1, 3, []int{1, 2, 3}, 1},
		{"coin larger than target", 2, 3, []int{5, 1}, 1},
		{"2,3,5 to 9", 3, 9, []int{2, 3, 5}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NumberOfWays(tt.n, tt.x, tt.coins)
			if err != nil {
				t.Fatalf("NumberOfWays(%d, %d, %v) error: %v", tt.n, tt.x, tt.coins, err)
			}
			if got != tt.want {
				t.Errorf("NumberOfWays(%d, %d, %v) = %d, want %d", tt.n, tt.x, tt.coins, got, tt.want)
			}
		})
	}
}

func TestNumberOfCombinations_Scenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		n, x  int
		coins []int
		want  int64
	}{
		{"multisets of 4 from 1,2,3", 3, 4, []int{1, 2, 3}, 4},
		{"2,3,5 to 9", 3, 9, []int{2, 3, 5}, 3},
		{"single coin equal to target", 1, 5, []int{5}, 1},
		{"unreachable target", 2, 3, []int{2, 4}, 0},
		{"zero target", 3, 0, []int{1, 2, 3}, 1},
		{"no coins", 0, 0, nil, 1},
		{"duplicate denominations", 2, 2, []int{1, 1}, 3},
		// Zero-valued coins follow the rolling-row recurrence literally.
		{"lone zero coin", 1, 0, []int{0}, 1},
		{"zero coin processed first", 2, 2, []int{1, 0}, 1},
		{"zero coin processed after a positive one", 2, 2, []int{0, 1}, 2},
		{"zero coin doubles the zero target", 2, 0, []int{0, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NumberOfCombinations(tt.n, tt.x, tt.coins)
			if err != nil {
				t.Fatalf("NumberOfCombinations(%d, %d, %v) error: %v", tt.n, tt.x, tt.coins, err)
			}
			if got != tt.want {
				t.Errorf("NumberOfCombinations(%d, %d, %v) = %d, want %d", tt.n, tt.x, tt.coins, got, tt.want)
			}
		})
	}
}

func TestNumberOfWays_InvalidArgument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n, x      int
		coins     []int
		wantField string
	}{
		{"negative n", -1, 4, []int{1}, "n"},
		{"negative x", 1, -4, []int{1}, "x"},
		{"x above MaxSum", 1, MaxSum + 1, []int{1}, "x"},
		{"fewer coins than n", 3, 4, []int{1, 2}, "coins"},
		{"nil coins with positive n", 1, 0, nil, "coins"},
		{"negative denomination", 2, 4, []int{1, -2}, "coins"},
		{"zero denomination is unbounded", 2, 4, []int{0, 1}, "coins"},
		{"zero denomination with zero target", 1, 0, []int{0}, "coins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NumberOfWays(tt.n, tt.x, tt.coins)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Errorf("error %v should wrap ErrInvalidArgument", err)
			}
			var verr apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v should be a ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNumberOfCombinations_RejectsNegativeInput(t *testing.T) {
	t.Parallel()
	if _, err := NumberOfCombinations(2, 3, []int{1}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("short coin list: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NumberOfCombinations(1, 3, []int{-1}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("negative coin: got %v, want ErrInvalidArgument", err)
	}
}

// TestNumberOfWays_ReducesModulo checks the reduction against exact
// arithmetic: with coins {1, 2} the ordered count for x is F(x+1).
func TestNumberOfWays_ReducesModulo(t *testing.T) {
	t.Parallel()
	const x = 2000
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < x+1; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	want := new(big.Int).Mod(a, big.NewInt(Modulus)).Int64()

	got, err := NumberOfWays(2, x, []int{1, 2})
	if err != nil {
		t.Fatalf("NumberOfWays error: %v", err)
	}
	if got != want {
		t.Errorf("NumberOfWays(2, %d, [1 2]) = %d, want F(%d) mod M = %d", x, got, x+1, want)
	}
}

func TestNewProblem_CopiesFirstNCoins(t *testing.T) {
	t.Parallel()
	coins := []int{3, 4, 5}
	p, err := NewProblem(2, 7, coins)
	if err != nil {
		t.Fatalf("NewProblem error: %v", err)
	}
	coins[0] = 99
	if len(p.Coins) != 2 || p.Coins[0] != 3 || p.Coins[1] != 4 {
		t.Errorf("Problem.Coins = %v, want [3 4]", p.Coins)
	}
}

func TestTable(t *testing.T) {
	t.Parallel()
	p, err := NewProblem(3, 6, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ordered", func(t *testing.T) {
		t.Parallel()
		row, err := Table(context.Background(), ModeOrdered, p, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := []int64{1, 1, 2, 4, 7, 13, 24}
		assertRow(t, row, want)
	})

	t.Run("combinations", func(t *testing.T) {
		t.Parallel()
		row, err := Table(context.Background(), ModeCombinations, p, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := []int64{1, 1, 2, 3, 4, 5, 7}
		assertRow(t, row, want)
	})

	t.Run("invalid problem", func(t *testing.T) {
		t.Parallel()
		_, err := Table(context.Background(), ModeOrdered, Problem{N: 2, X: 3, Coins: []int{1}}, nil)
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("got %v, want ErrInvalidArgument", err)
		}
	})
}

func assertRow(t *testing.T, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"ordered", ModeOrdered, false},
		{"ORDERED", ModeOrdered, false},
		{"combinations", ModeCombinations, false},
		{" combination ", ModeCombinations, false},
		{"permutations", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := ModeCombinations.String(); s != "combinations" {
		t.Errorf("ModeCombinations.String() = %q", s)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", s)
	}
}
