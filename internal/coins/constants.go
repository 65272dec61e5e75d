package coins

import (
	"fmt"
	"strings"
)

// Modulus is the prime all counts are reduced by.
const Modulus int64 = 1_000_000_007

// MaxSum bounds the target sum so the O(x) table always fits in memory
// (2^28 int64 entries is 2 GiB).
const MaxSum = 1 << 28

// cancelCheckMask controls how often the inner loops poll ctx.Err().
const cancelCheckMask = 1<<12 - 1

// Mode selects what is being counted.
type Mode int

const (
	// ModeOrdered counts ordered sequences of coin picks.
	ModeOrdered Mode = iota
	// ModeCombinations counts unordered multisets of coin picks.
	ModeCombinations
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOrdered:
		return "ordered"
	case ModeCombinations:
		return "combinations"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "ordered" or "combinations" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ordered":
		return ModeOrdered, nil
	case "combinations", "combination":
		return ModeCombinations, nil
	}
	return 0, fmt.Errorf("unknown counting mode %q (want ordered or combinations)", s)
}
