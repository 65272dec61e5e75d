package orchestration

import (
	"strings"

	"github.com/agbru/coincount/internal/coins"
	"github.com/agbru/coincount/internal/config"
	apperrors "github.com/agbru/coincount/internal/errors"
)

// SelectCounters resolves the --algo and --mode settings into counters.
//
//   - algo "" runs the default counter of the mode.
//   - algo "all" runs every counter of the mode, sorted by name.
//   - a named algo runs that counter; an empty mode is inferred from it,
//     an explicit mode that disagrees with it is a configuration error.
//
// An empty mode with algo "" or "all" means coins.ModeOrdered.
func SelectCounters(algo, mode string, factory coins.CounterFactory) ([]coins.Counter, coins.Mode, error) {
	var (
		m       coins.Mode
		modeSet bool
	)
	if strings.TrimSpace(mode) != "" {
		parsed, err := coins.ParseMode(mode)
		if err != nil {
			return nil, 0, apperrors.NewConfigError("%v", err)
		}
		m, modeSet = parsed, true
	}

	switch algo {
	case "":
		c, err := factory.Get(coins.DefaultCounterName(m))
		if err != nil {
			return nil, 0, apperrors.NewConfigError("%v", err)
		}
		return []coins.Counter{c}, m, nil
	case config.AlgoAll:
		counters := factory.ForMode(m)
		if len(counters) == 0 {
			return nil, 0, apperrors.NewConfigError("no counter available for mode %s", m)
		}
		return counters, m, nil
	}

	c, err := factory.Get(algo)
	if err != nil {
		return nil, 0, apperrors.NewConfigError("%v", err)
	}
	if modeSet && c.Mode() != m {
		return nil, 0, apperrors.NewConfigError("counter %q counts %s, not %s", algo, c.Mode(), m)
	}
	return []coins.Counter{c}, c.Mode(), nil
}
