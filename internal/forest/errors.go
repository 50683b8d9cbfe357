package forest

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput           = errors.New("forest: empty input")
	ErrInvalidHeightDigit   = errors.New("forest: invalid height digit")
	ErrInconsistentRowWidth = errors.New("forest: inconsistent row width")
	ErrNoScoreFound         = errors.New("forest: no score found")
)

// InvalidDigitError reports a non-digit character in the input.
type InvalidDigitError struct {
	Char rune
	Row  int
	Col  int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("forest: invalid height digit %q at row %d, col %d", e.Char, e.Row, e.Col)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidHeightDigit }

// RowWidthError reports a row whose length differs from the first row.
type RowWidthError struct {
	Expected int
	Actual   int
	Row      int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("forest: row %d has width %d, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *RowWidthError) Unwrap() error { return ErrInconsistentRowWidth }
