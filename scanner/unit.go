package scanner

import (
	"github.com/ava12/zen/source"
)

// Op is a structural operator.
type Op byte

const (
	Descend  Op = '>'
	Sibling  Op = '+'
	Ascend   Op = '^'
	AscendTo Op = '<'
)

func (op Op) String() string {
	return string(rune(op))
}

// IsOp reports whether c is a structural operator character.
func IsOp(c byte) bool {
	switch Op(c) {
	case Descend, Sibling, Ascend, AscendTo:
		return true
	}
	return false
}

// Unit is a structural operator followed by an element substring.
// Position information refers to the operator; the leading implicit descend operator
// is positioned at the first body character.
type Unit struct {
	op        Op
	body      string
	source    *source.Source
	offset    int
	line, col int
}

// NewUnit creates a unit positioned at byte offset pos of src, src may be nil.
func NewUnit(op Op, body string, src *source.Source, pos int) *Unit {
	u := &Unit{op: op, body: body, source: src, offset: pos}
	if src != nil {
		u.line, u.col = src.LineCol(pos)
	}
	return u
}

func (u *Unit) Op() Op {
	return u.op
}

func (u *Unit) Body() string {
	return u.body
}

func (u *Unit) Source() *source.Source {
	return u.source
}

func (u *Unit) SourceName() string {
	if u.source == nil {
		return ""
	} else {
		return u.source.Name()
	}
}

func (u *Unit) Offset() int {
	return u.offset
}

func (u *Unit) Line() int {
	return u.line
}

func (u *Unit) Col() int {
	return u.col
}

// String returns operator and body as written in a template.
func (u *Unit) String() string {
	return u.op.String() + u.body
}
