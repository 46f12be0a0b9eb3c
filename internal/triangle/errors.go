package triangle

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRow = errors.New("malformed row")
	ErrInvalidToken = errors.New("invalid token")
)

// RowLengthError reports a row whose token count differs from its position
// in the triangle. Line is 1-based and equals the expected count.
type RowLengthError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *RowLengthError) Error() string {
	if e.Actual > e.Expected {
		return fmt.Sprintf("too many values in line %d: there are %d values but should be only %d value(s)",
			e.Line, e.Actual, e.Expected)
	}
	return fmt.Sprintf("line %d is too short: up to now you entered %d number(s), please enter %d more number(s) in the line",
		e.Line, e.Actual, e.Missing())
}

// Missing is the number of values still needed to complete the row.
func (e *RowLengthError) Missing() int {
	if e.Actual >= e.Expected {
		return 0
	}
	return e.Expected - e.Actual
}

func (e *RowLengthError) Unwrap() error {
	return ErrMalformedRow
}

type TokenError struct {
	Line  int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("line %d does not contain expected number, the encountered input was: %q", e.Line, e.Token)
}

func (e *TokenError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidToken}
	}
	return []error{ErrInvalidToken, e.Err}
}
