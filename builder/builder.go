// Package builder interprets structural operators of scanned units and builds an element tree.
package builder

import (
	"github.com/rs/zerolog"

	"github.com/ava12/zen"
	"github.com/ava12/zen/descriptor"
	"github.com/ava12/zen/scanner"
	"github.com/ava12/zen/tree"
)

// Error codes used by builder:
const (
	// DanglingSiblingError indicates "+" applied while the cursor is at the root.
	DanglingSiblingError = zen.BuildErrors + iota

	// AncestorNotFoundError indicates that no element matches "<" selector.
	// Error message contains the selector.
	AncestorNotFoundError
)

func danglingSiblingError(u *scanner.Unit) *zen.Error {
	return zen.FormatErrorPos(u, DanglingSiblingError, "no parent element for sibling %q", u.Body())
}

func ancestorNotFoundError(u *scanner.Unit) *zen.Error {
	return zen.FormatErrorPos(u, AncestorNotFoundError, "cannot find parent/ancestor for %q", u.Body())
}

// Cursor is the current tree position.
// Node is the root or an element. AtText is set right after a text leaf was appended to Node,
// in this case the position is the text leaf itself.
type Cursor struct {
	Node   tree.Container
	AtText bool
}

// Builder applies units to its own tree.
// Builder is not safe for concurrent use, but separate builders are independent.
type Builder struct {
	root   *tree.Root
	cursor Cursor
	opts   descriptor.Options
	log    zerolog.Logger
}

// New creates a Builder with an empty root, the cursor is at the root.
func New(opts descriptor.Options, log zerolog.Logger) *Builder {
	root := tree.NewRoot()
	return &Builder{
		root:   root,
		cursor: Cursor{Node: root},
		opts:   opts,
		log:    log,
	}
}

func (b *Builder) Root() *tree.Root {
	return b.root
}

func (b *Builder) Cursor() Cursor {
	return b.cursor
}

// Apply performs the transition for unit u.
// On error the tree may contain nodes created by previous units and must be discarded.
func (b *Builder) Apply(u *scanner.Unit) error {
	var (
		d *descriptor.Descriptor
		e error
	)
	if u.Body() != "" {
		d, e = descriptor.Parse(u, u.Body(), b.opts)
		if e != nil {
			return e
		}
	} else if u.Op() != scanner.Ascend {
		return zen.FormatErrorPos(u, scanner.MissingElementStringError, "missing element string for %q", u.Op())
	}

	switch u.Op() {
	case scanner.Descend:
		e = b.descend(d)
	case scanner.Sibling:
		e = b.sibling(u, d)
	case scanner.Ascend:
		b.ascend(d)
	case scanner.AscendTo:
		e = b.ascendTo(u, d)
	}

	if e == nil {
		b.log.Trace().
			Str("op", u.Op().String()).
			Str("body", u.Body()).
			Int("depth", tree.NodeLevel(b.cursor.Node)).
			Bool("at_text", b.cursor.AtText).
			Msg("unit applied")
	}
	return e
}

// Build applies all units returned by s.
func (b *Builder) Build(s *scanner.Scanner) error {
	for {
		u, e := s.Next()
		if e == nil && u != nil {
			e = b.Apply(u)
		}
		if e != nil || u == nil {
			return e
		}
	}
}

// add appends a node created from d to parent and moves the cursor to it.
func (b *Builder) add(parent tree.Container, d *descriptor.Descriptor) {
	if d.Tag == "" {
		parent.AppendChild(tree.NewText(d.Text))
		b.cursor = Cursor{Node: parent, AtText: true}
		return
	}

	el := tree.NewElement(d)
	if d.Text != "" {
		el.AppendChild(tree.NewText(d.Text))
	}
	parent.AppendChild(el)
	b.cursor = Cursor{Node: el}
}

func (b *Builder) descend(d *descriptor.Descriptor) error {
	if !d.IsVoid() {
		b.add(b.cursor.Node, d)
	}
	return nil
}

func (b *Builder) sibling(u *scanner.Unit, d *descriptor.Descriptor) error {
	if d.IsVoid() {
		return nil
	}

	parent := b.cursor.Node
	if !b.cursor.AtText {
		parent = parent.Parent()
		if parent == nil {
			return danglingSiblingError(u)
		}
	}

	b.add(parent, d)
	return nil
}

// ascend saturates at the root. A text position counts as one level below its parent.
func (b *Builder) ascend(d *descriptor.Descriptor) {
	levels := 1
	if d != nil {
		levels = 2
	}
	if b.cursor.AtText {
		levels--
	}

	b.cursor = Cursor{Node: tree.Ascend(b.cursor.Node, levels)}
	if d != nil && !d.IsVoid() {
		b.add(b.cursor.Node, d)
	}
}

func (b *Builder) ascendTo(u *scanner.Unit, d *descriptor.Descriptor) error {
	found := tree.Closest(b.cursor.Node, tree.Matches(d))
	if found == nil {
		return ancestorNotFoundError(u)
	}

	b.cursor = Cursor{Node: found}
	return nil
}
