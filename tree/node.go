package tree

import (
	"strings"

	"github.com/ava12/zen/descriptor"
)

// Kind is the kind of a node.
type Kind int

const (
	RootKind Kind = iota
	ElementKind
	TextKind
)

func (k Kind) String() string {
	switch k {
	case RootKind:
		return "root"
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	}
	return "unknown"
}

// Node is a tree node. Siblings are doubly linked, every node but a root has a parent.
type Node interface {
	Kind() Kind
	Parent() Container
	Prev() Node
	Next() Node
	SetParent(Container)
	SetPrev(Node)
	SetNext(Node)
}

// Container is a node that may have children: a root or an element.
type Container interface {
	Node
	FirstChild() Node
	LastChild() Node
	SetFirstChild(Node)
	SetLastChild(Node)
	AppendChild(Node)
}

type links struct {
	parent     Container
	prev, next Node
}

func (l *links) Parent() Container {
	return l.parent
}

func (l *links) Prev() Node {
	return l.prev
}

func (l *links) Next() Node {
	return l.next
}

func (l *links) SetParent(p Container) {
	l.parent = p
}

func (l *links) SetPrev(p Node) {
	l.prev = p
}

func (l *links) SetNext(n Node) {
	l.next = n
}

type children struct {
	firstChild, lastChild Node
}

func (c *children) FirstChild() Node {
	return c.firstChild
}

func (c *children) LastChild() Node {
	return c.lastChild
}

func (c *children) SetFirstChild(n Node) {
	c.firstChild = n
}

func (c *children) SetLastChild(n Node) {
	c.lastChild = n
}

// appendChild links n as the last child of p, n must be detached.
func appendChild(p Container, n Node) {
	last := p.LastChild()
	n.SetParent(p)
	n.SetPrev(last)
	n.SetNext(nil)
	if last == nil {
		p.SetFirstChild(n)
	} else {
		last.SetNext(n)
	}
	p.SetLastChild(n)
}

// Root is the synthetic container owning top-level nodes; it is never serialized.
type Root struct {
	children
}

func NewRoot() *Root {
	return &Root{}
}

func (r *Root) Kind() Kind {
	return RootKind
}

func (r *Root) Parent() Container {
	return nil
}

func (r *Root) Prev() Node {
	return nil
}

func (r *Root) Next() Node {
	return nil
}

func (r *Root) SetParent(Container) {}

func (r *Root) SetPrev(Node) {}

func (r *Root) SetNext(Node) {}

func (r *Root) AppendChild(n Node) {
	AppendChild(r, n)
}

// Element is an element node.
type Element struct {
	links
	children
	tag     string
	id      string
	classes []string
	attrs   descriptor.Attrs
}

// NewElement creates an element from tag, id, classes, and attributes of d, text of d is ignored.
func NewElement(d *descriptor.Descriptor) *Element {
	e := &Element{tag: d.Tag, id: d.ID}
	if len(d.Classes) > 0 {
		e.classes = append([]string(nil), d.Classes...)
	}
	if len(d.Attrs) > 0 {
		e.attrs = append(descriptor.Attrs(nil), d.Attrs...)
	}
	return e
}

func (e *Element) Kind() Kind {
	return ElementKind
}

func (e *Element) AppendChild(n Node) {
	AppendChild(e, n)
}

func (e *Element) Tag() string {
	return e.tag
}

func (e *Element) ID() string {
	return e.id
}

// Classes returns a copy of element classes.
func (e *Element) Classes() []string {
	return append([]string(nil), e.classes...)
}

// HasClass reports whether the element has given class.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Attr returns attribute value and presence flag.
// id and class resolve to the shorthand id and class list when they are set.
func (e *Element) Attr(key string) (string, bool) {
	switch {
	case key == "id" && e.id != "":
		return e.id, true
	case key == "class" && len(e.classes) > 0:
		return strings.Join(e.classes, " "), true
	}
	return e.attrs.Get(key)
}

// Attrs returns attributes in serialization order: declared attributes in declaration order,
// then class and id unless declared. Shorthand id and classes override declared values.
func (e *Element) Attrs() descriptor.Attrs {
	res := make(descriptor.Attrs, 0, len(e.attrs)+2)
	for _, a := range e.attrs {
		v, _ := e.Attr(a.Key)
		res = append(res, descriptor.Attr{Key: a.Key, Value: v})
	}
	for _, key := range []string{"class", "id"} {
		if _, declared := e.attrs.Get(key); declared {
			continue
		}
		if v, present := e.Attr(key); present {
			res = append(res, descriptor.Attr{Key: key, Value: v})
		}
	}
	return res
}

// DeclaredAttrs returns a copy of attributes as declared, without shorthand id and classes.
func (e *Element) DeclaredAttrs() descriptor.Attrs {
	return append(descriptor.Attrs(nil), e.attrs...)
}

// Text is a text leaf node.
type Text struct {
	links
	text string
}

func NewText(text string) *Text {
	return &Text{text: text}
}

func (t *Text) Kind() Kind {
	return TextKind
}

func (t *Text) Text() string {
	return t.text
}
