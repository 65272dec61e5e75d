// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Print* functions write run information before the count starts.
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/coincount/internal/format"
	"github.com/agbru/coincount/internal/orchestration"
	"github.com/agbru/coincount/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Verbose prints a confirmation once the file is written.
	Verbose bool
}

// WriteResultToFile writes a result report for result to config.OutputFile.
// Missing parent directories are created. An empty path is a no-op.
func WriteResultToFile(result orchestration.CountResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	p := opts.Problem
	fmt.Fprintf(file, "# Coin Count Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Counter: %s\n", result.Name)
	fmt.Fprintf(file, "# Mode: %s\n", opts.Mode)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# N: %d\n", p.N)
	fmt.Fprintf(file, "# X: %d\n", p.X)
	fmt.Fprintf(file, "# Coins: %s\n", format.FormatInts(p.Coins, 0))
	fmt.Fprintf(file, "\n%s = %d\n", resultLabel(opts.Mode, p.X), result.Count)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayQuietResult writes only the count followed by a newline.
func DisplayQuietResult(out io.Writer, count int64) {
	fmt.Fprintln(out, count)
}

// DisplaySavedFile confirms that the result file was written.
func DisplaySavedFile(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%sResult saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}

// FormatTable returns the DP row as space-separated values. With edge > 0,
// rows longer than 2*edge have their middle elided.
func FormatTable(row []int64, edge int) string {
	if edge > 0 && len(row) > 2*edge {
		return fmt.Sprintf("%s ... %s (%d values)",
			joinCounts(row[:edge]), joinCounts(row[len(row)-edge:]), len(row))
	}
	return joinCounts(row)
}

func joinCounts(row []int64) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// DisplayTable writes the DP row. The quiet form is one value per line for
// scripting; the verbose form is a titled, possibly elided, single line.
func DisplayTable(out io.Writer, row []int64, verbose bool) {
	if !verbose {
		for _, v := range row {
			fmt.Fprintln(out, v)
		}
		return
	}
	fmt.Fprintf(out, "\n%s\n", ui.SectionTitle("DP Table"))
	fmt.Fprintln(out, FormatTable(row, TableDisplayEdges))
}
