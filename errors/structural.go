// Package errors defines the structural error codes and error types reported
// while parsing Humdrum spine data.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of parse failure.
type ErrorCode string

const (
	// ErrIO indicates the input could not be opened or read.
	ErrIO ErrorCode = "hum-io"
	// ErrFirstLine indicates data appeared before the first exclusive interpretation.
	ErrFirstLine ErrorCode = "hum-first-line"
	// ErrFieldCount indicates a field-count mismatch on a line without manipulators.
	ErrFieldCount ErrorCode = "hum-field-count"
	// ErrAlignment indicates two adjacent lines could not be stitched together.
	ErrAlignment ErrorCode = "hum-align"
	// ErrAddExclusive indicates an add manipulator was not followed by an exclusive interpretation.
	ErrAddExclusive ErrorCode = "hum-add-exclusive"
	// ErrExchange indicates an exchange manipulator without its adjacent partner.
	ErrExchange ErrorCode = "hum-exchange"
	// ErrExclusive indicates an exclusive interpretation with no prepared track slot.
	ErrExclusive ErrorCode = "hum-exclusive"
	// ErrInternal indicates a structurally unreachable state was reached.
	ErrInternal ErrorCode = "hum-internal"
)

// Structural describes a spine-structure parse error with optional line and
// field context. Line numbers are 1-based; Field is a 0-based field index.
// A zero Line or a negative Field means the context is unknown.
//
//nolint:errname // public API name uses Humdrum domain term.
type Structural struct {
	Code    string
	Message string
	Line    int
	Field   int
}

// Error formats the error for display, including code and line/field context.
func (s *Structural) Error() string {
	if s == nil {
		return "structural <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", s.Code, s.Message))
	if s.Line > 0 {
		if s.Field >= 0 {
			b.WriteString(fmt.Sprintf(" (line %d, field %d)", s.Line, s.Field))
		} else {
			b.WriteString(fmt.Sprintf(" (line %d)", s.Line))
		}
	}
	return b.String()
}

// NewStructural builds a Structural error with a code and message but no
// line/field context.
func NewStructural(code ErrorCode, msg string) *Structural {
	return &Structural{Code: string(code), Message: msg, Field: -1}
}

// NewStructuralf formats a message and builds a Structural error at the given
// 1-based line number. Pass field -1 when the field index is unknown.
func NewStructuralf(code ErrorCode, line, field int, format string, args ...any) *Structural {
	return &Structural{
		Code:    string(code),
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Field:   field,
	}
}

// AsStructural extracts a structural error from an error returned by parse
// helpers.
func AsStructural(err error) (*Structural, bool) {
	if err == nil {
		return nil, false
	}
	var s *Structural
	if errors.As(err, &s) && s != nil {
		return s, true
	}
	return nil, false
}
