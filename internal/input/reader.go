// Package input reads a counting problem from a whitespace-separated token
// stream: n, x, then n coin values.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/coincount/internal/coins"
	apperrors "github.com/agbru/coincount/internal/errors"
)

// maxTokenSize bounds a single token; the default bufio limit is 64 KiB.
const maxTokenSize = 1 << 20

// Read parses one problem from r. Tokens after the n-th coin are ignored.
// Missing or malformed tokens produce errors wrapping
// apperrors.ErrInvalidArgument.
func Read(r io.Reader) (coins.Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	tr := &tokenReader{sc: sc}
	n, err := tr.next("n")
	if err != nil {
		return coins.Problem{}, err
	}
	x, err := tr.next("x")
	if err != nil {
		return coins.Problem{}, err
	}
	if n < 0 {
		return coins.Problem{}, apperrors.NewInvalidArgument("n", "must be non-negative, got %d", n)
	}

	values := make([]int, 0, min(n, 1<<16))
	for i := 0; i < n; i++ {
		v, err := tr.next("coins")
		if err != nil {
			if tr.eof {
				return coins.Problem{}, apperrors.NewInvalidArgument("coins", "expected %d values, got %d", n, i)
			}
			return coins.Problem{}, err
		}
		values = append(values, v)
	}
	return coins.NewProblem(n, x, values)
}

type tokenReader struct {
	sc    *bufio.Scanner
	count int
	eof   bool
}

func (t *tokenReader) next(field string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, apperrors.WrapError(err, "reading %s", field)
		}
		t.eof = true
		return 0, apperrors.NewInvalidArgument(field, "missing value (input ended after %d tokens)", t.count)
	}
	t.count++
	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, apperrors.NewInvalidArgument(field, "token %d (%q) is not an integer", t.count, tok)
	}
	return v, nil
}

// ReadString is Read over a string.
func ReadString(s string) (coins.Problem, error) {
	return Read(strings.NewReader(s))
}

// Format renders p in the input format accepted by Read.
func Format(p coins.Problem) string {
	b := []byte(fmt.Sprintf("%d %d\n", p.N, p.X))
	for i, c := range p.Denominations() {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(c), 10)
	}
	return string(append(b, '\n'))
}
