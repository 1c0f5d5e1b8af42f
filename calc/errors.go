package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDomain reports input for which a statistic is undefined, such as
	// an empty list or a non-positive norm exponent.
	ErrDomain = errors.New("domain error")
	// ErrRange reports an order-statistic index outside [1, n].
	ErrRange = errors.New("index out of range")
	// ErrInvalidCommand reports an unknown command name.
	ErrInvalidCommand = errors.New("invalid command")
)

// A ParseError records a value that could not be read as a number.
// Source and Line are empty/zero when the value came from a flag.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%s:", e.Source)
		if e.Line > 0 {
			fmt.Fprintf(&b, "%d:", e.Line)
		}
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "invalid number %q", e.Text)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseNumber parses s, ignoring surrounding whitespace, as a float64.
func ParseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &ParseError{Text: t, Err: err}
	}
	return v, nil
}
