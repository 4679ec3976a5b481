package seq

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid generation parameters.
var (
	// ErrInvalidSeparator indicates the resolved separator is empty.
	ErrInvalidSeparator = errors.New("expected a single separator character")
	// ErrInvalidIncrement indicates a step size of zero.
	ErrInvalidIncrement = errors.New("increment cannot be 0")
	// ErrIntegerOverflow indicates a day-count-derived end date outside
	// the representable calendar range.
	ErrIntegerOverflow = errors.New("integer value too large")
	// ErrDateOutOfRange indicates the starting date already lies past the
	// end in the direction of travel.
	ErrDateOutOfRange = errors.New("date is out of range")
)

// ParseError reports begin/end text that does not match the input format.
type ParseError struct {
	Text   string // the offending input
	Format string // the strftime format in use
	Err    error  // underlying parser error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q with input format %q", e.Text, e.Format)
}

func (e *ParseError) Unwrap() error { return e.Err }
