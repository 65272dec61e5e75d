package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/coincount/internal/coins"
	"github.com/agbru/coincount/internal/config"
	"github.com/agbru/coincount/internal/format"
	"github.com/agbru/coincount/internal/ui"
)

// problemDisplayEdges bounds how many denominations are echoed per side.
const problemDisplayEdges = 8

// PrintExecutionConfig displays the problem being solved and the run settings.
func PrintExecutionConfig(cfg config.AppConfig, p coins.Problem, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.SectionTitle("Execution Configuration"))
	fmt.Fprintf(out, "Counting ways to reach %sx=%d%s with %s%d%s coins with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), p.X, ui.ColorReset(),
		ui.ColorMagenta(), p.N, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Coins: %s\n", format.FormatInts(p.Coins, problemDisplayEdges))
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether one counter runs or several are compared.
func PrintExecutionMode(counters []coins.Counter, mode coins.Mode, out io.Writer) {
	var modeDesc string
	if len(counters) > 1 {
		modeDesc = fmt.Sprintf("Parallel comparison of %d %s counters", len(counters), mode)
	} else if len(counters) == 1 {
		modeDesc = fmt.Sprintf("Single %s count with the %s%s%s counter",
			mode, ui.ColorGreen(), counters[0].Name(), ui.ColorReset())
	} else {
		modeDesc = "No counter selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n%s\n", ui.SectionTitle("Starting Execution"))
}
