/*
Package zen expands emmet-like templates into element trees.

A template such as

	ul#menu>li.item[data-x=1]{first}+li.item{second}^p{after}

describes elements (tag, #id, .classes, [attributes], {text}) joined by
structural operators:

	>  descend: the next element becomes a child of the current one;
	+  sibling: the next element follows the current one;
	^  ascend: bare, moves one level up; with an element, closes two levels
	   and adds the element there;
	<  ascend to ancestor: moves to the nearest ancestor (or the current element)
	   matching a tag/id/class/attribute selector.

Consists of subpackages:
  - source: named template text with line and column lookup;
  - descriptor: parses one element substring (escapes, attributes, text);
  - scanner: splits a template into (operator, element) units;
  - tree: element, text and root nodes, navigation and filters;
  - builder: cursor state machine building a tree from units;
  - markup: serializes a tree to markup;
  - host: attaches copies of a tree to a host document (x/net/html or etree adapters);
  - expand: the engine combining all of the above;
  - config: loading engine options from files and environment;
  - cmd/zen: command line front end.

The root package defines the error type shared by subpackages.
*/
package zen

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	ScanErrors       = 101 // used by scanner
	DescriptorErrors = 201 // used by descriptor
	BuildErrors      = 301 // used by builder
)

// Error is the error type used by zen subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains template name that caused this error or empty string.
	SourceName string

	// Line contains line number in template or 0.
	Line int

	// Col contains column number in template or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and scanner.Unit implement this interface.
type SourcePos interface {
	// SourceName returns template name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// HasCode reports whether err or any error it wraps is an *Error with given code.
func HasCode(err error, code int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
