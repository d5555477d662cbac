// Package scanner splits a template into units, each one is a structural operator
// followed by an element substring.
package scanner

import (
	"strings"

	"github.com/ava12/zen"
	"github.com/ava12/zen/descriptor"
	"github.com/ava12/zen/source"
)

// Error codes used by scanner:
const (
	// EmptyTemplateError indicates an empty template.
	EmptyTemplateError = zen.ScanErrors + iota

	// MissingElementStringError indicates an operator other than "^" followed by no element substring.
	// Error message contains template text near the operator.
	MissingElementStringError
)

const (
	snippetBefore = 5
	snippetSize   = 9
)

func emptyTemplateError(src *source.Source) *zen.Error {
	if src.Name() == "" {
		return zen.FormatError(EmptyTemplateError, "empty template")
	}
	return zen.FormatError(EmptyTemplateError, "empty template %q", src.Name())
}

func missingElementError(u *Unit) *zen.Error {
	near := u.source.Snippet(u.offset, snippetBefore, snippetSize)
	return zen.FormatErrorPos(u, MissingElementStringError, "missing element string near: %q", near)
}

// Scanner fetches units from a template one by one.
// The first unit always has Descend operator which is implied before the template.
// Bracket and brace groups are opaque, so operator characters inside them are never structural.
// Scanner is not safe for concurrent use.
type Scanner struct {
	src     *source.Source
	pos     int
	started bool
	done    bool
}

// New creates a Scanner for src.
func New(src *source.Source) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) skipSpace() {
	content := s.src.Content()
	for s.pos < len(content) && isSpace(content[s.pos]) {
		s.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// Next fetches next unit and advances current position.
// Returns nil, nil when the template is exhausted.
// An error stops the scanner, subsequent calls return nil, nil.
func (s *Scanner) Next() (*Unit, error) {
	if s.done {
		return nil, nil
	}

	content := s.src.Content()
	op := Descend
	s.skipSpace()
	unitPos := s.pos
	if !s.started {
		s.started = true
		if len(content) == 0 {
			s.done = true
			return nil, emptyTemplateError(s.src)
		}
	} else {
		if s.pos >= len(content) {
			s.done = true
			return nil, nil
		}

		op = Op(content[s.pos])
		s.pos++
		s.skipSpace()
	}

	bodyStart := s.pos
	for s.pos < len(content) && !IsOp(content[s.pos]) {
		if end := descriptor.GroupEnd(content, s.pos); end > 0 {
			s.pos = end
		} else {
			s.pos++
		}
	}

	u := NewUnit(op, strings.TrimSpace(content[bodyStart:s.pos]), s.src, unitPos)
	if u.body == "" && op != Ascend {
		s.done = true
		return nil, missingElementError(u)
	}

	return u, nil
}

// Scan returns all units of src.
func Scan(src *source.Source) ([]*Unit, error) {
	s := New(src)
	var res []*Unit
	for {
		u, e := s.Next()
		if e != nil {
			return nil, e
		}
		if u == nil {
			return res, nil
		}
		res = append(res, u)
	}
}
