package descriptor

import (
	"github.com/ava12/zen"
)

// Error codes used by descriptor:
const (
	// InvalidAttributeNameError indicates an attribute key not starting with a letter or underscore.
	// Error message contains the whole element substring.
	InvalidAttributeNameError = zen.DescriptorErrors + iota

	// UnexpectedCharError indicates a character that starts no element part, reported in strict mode only.
	UnexpectedCharError
)

func newError(pos zen.SourcePos, code int, msg string, params ...any) *zen.Error {
	if pos == nil {
		return zen.FormatError(code, msg, params...)
	}
	return zen.FormatErrorPos(pos, code, msg, params...)
}

func invalidAttributeNameError(pos zen.SourcePos, element string) *zen.Error {
	return newError(pos, InvalidAttributeNameError,
		"error for %q: attribute name must start with a letter or underscore", element)
}

func unexpectedCharError(pos zen.SourcePos, element string, c rune) *zen.Error {
	return newError(pos, UnexpectedCharError, "unexpected char %q in %q", c, element)
}
