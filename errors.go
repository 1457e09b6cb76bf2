package exact

import (
	"strconv"

	"github.com/pkg/errors"
)

// LiteralError is an error indicating a malformed decimal literal. It
// implements InputError.
type LiteralError struct {
	// Text is the input scanned up to and including the invalid rune.
	Text string
	// Kind is the kind of literal being scanned, "integer" or "decimal".
	Kind string
	// Col is the number of runes scanned up to and including the invalid
	// rune. It is the length of the input if the literal ended too early.
	Col int
}

func (err *LiteralError) Error() string {
	if err.Col == 0 {
		return "empty " + err.Kind + " literal"
	}
	return errpos(err.Col, "invalid "+err.Kind+" literal "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// ErrNotFinite is the error converting NaN or an infinity to a Float.
var ErrNotFinite = errors.New("exact: value is not finite")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var _ InputError = (*LiteralError)(nil)
