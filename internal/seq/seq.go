// Package seq implements the date-sequence engine behind dsq gen.
//
// A generation runs three phases in strict order: resolve the raw
// parameters into typed values, reconcile the (start, end, step) triple,
// then walk the range rendering each visited date. The engine holds no
// state; every call stands alone and either returns the full sequence or
// a typed error with nothing emitted.
package seq

import (
	"strings"
	"time"

	"github.com/dateseq/dateseq/internal/dates"
)

// Request carries the parameters for a single generation. A zero
// Separator or Increment is invalid; the CLI layer supplies its flag
// defaults for both.
type Request struct {
	// Separator joins rendered dates in text output. The two-character
	// escapes \t, \n, and \r normalize to the matching control
	// character; any other non-empty string is used verbatim.
	Separator string

	// OutputFormat renders each emitted date. Empty means %Y-%m-%d.
	OutputFormat string

	// InputFormat parses Begin and End. Empty means %Y-%m-%d.
	InputFormat string

	// Begin and End bound the range. Empty means today. The relative
	// keywords today, yesterday, and tomorrow are accepted alongside
	// dates written in InputFormat.
	Begin string
	End   string

	// Increment is the step size in days. Zero is invalid.
	Increment int64

	// Days, when nonzero, derives End from Begin: the walk covers a
	// window of that many calendar days starting at Begin, overriding
	// any explicit End.
	Days int64

	// Reverse negates both Increment and Days, walking the range
	// backward from Begin.
	Reverse bool

	// Today fixes the current date for defaulted Begin/End and for
	// relative keywords. The zero value falls back to the local clock.
	Today time.Time
}

// Result is a generated sequence of rendered dates.
type Result struct {
	// Dates holds the rendered dates in emission order. Never empty on
	// success.
	Dates []string
	// Separator is the resolved joiner used by Join.
	Separator string
}

// Join renders the sequence as a single text blob.
func (r *Result) Join() string {
	return strings.Join(r.Dates, r.Separator)
}

// Generate runs a single generation request.
func Generate(req Request) (*Result, error) {
	sep, err := resolveSeparator(req.Separator)
	if err != nil {
		return nil, err
	}

	outFormat := req.OutputFormat
	if outFormat == "" {
		outFormat = dates.DefaultFormat
	}
	inFormat := req.InputFormat
	if inFormat == "" {
		inFormat = dates.DefaultFormat
	}

	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = dates.Normalize(today)

	start, err := resolveDate(req.Begin, inFormat, today)
	if err != nil {
		return nil, err
	}
	end, err := resolveDate(req.End, inFormat, today)
	if err != nil {
		return nil, err
	}

	p, err := reconcile(start, end, req.Increment, req.Days, req.Reverse)
	if err != nil {
		return nil, err
	}

	return &Result{Dates: emit(p, outFormat), Separator: sep}, nil
}

// resolveSeparator normalizes the separator flag text. The escapes are
// matched against the literal two-character sequences so that shells
// which do not interpret backslashes still produce control characters.
func resolveSeparator(raw string) (string, error) {
	switch raw {
	case `\t`:
		return "\t", nil
	case `\n`:
		return "\n", nil
	case `\r`:
		return "\r", nil
	case "":
		return "", ErrInvalidSeparator
	default:
		return raw, nil
	}
}

// resolveDate turns one begin/end argument into a calendar date. Empty
// text means today; relative keywords win over format parsing.
func resolveDate(arg, format string, today time.Time) (time.Time, error) {
	if arg == "" {
		return today, nil
	}
	if d, ok := dates.ResolveKeyword(arg, today); ok {
		return d, nil
	}
	d, err := dates.Parse(format, arg)
	if err != nil {
		return time.Time{}, &ParseError{Text: arg, Format: format, Err: err}
	}
	return d, nil
}
