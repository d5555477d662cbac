// Package tree defines element trees built by expansion: a synthetic root container,
// element nodes and text leaves, plus functions to navigate, search, and copy them.
package tree

import (
	"golang.org/x/text/cases"

	"github.com/ava12/zen/descriptor"
)

// StringWriter is the output used by serializers.
type StringWriter interface {
	WriteString(string) (int, error)
}

// Ancestor returns (level + 1)-th ancestor of n, i.e. Ancestor(n, 0) is the parent of n.
// Returns nil if there is no such ancestor.
func Ancestor(n Node, level int) Container {
	var p Container
	for n != nil && level >= 0 {
		p = n.Parent()
		if p == nil {
			return nil
		}
		n = p
		level--
	}
	return p
}

// Ascend moves levels times from c to its parent, stopping at the topmost container.
func Ascend(c Container, levels int) Container {
	for ; levels > 0 && c != nil; levels-- {
		p := c.Parent()
		if p == nil {
			break
		}
		c = p
	}
	return c
}

// NodeLevel returns the number of ancestors of n.
func NodeLevel(n Node) (l int) {
	if n == nil {
		return
	}

	p := n.Parent()
	for p != nil {
		l++
		p = p.Parent()
	}
	return
}

// NthChild returns i-th child of n counting from 0, negative i counts from the last child (-1).
func NthChild(n Node, i int) Node {
	c, is := n.(Container)
	if n == nil || !is {
		return nil
	}

	var res Node
	if i >= 0 {
		res = c.FirstChild()
		for res != nil && i > 0 {
			res = res.Next()
			i--
		}
	} else {
		i++
		res = c.LastChild()
		for res != nil && i < 0 {
			res = res.Prev()
			i++
		}
	}

	return res
}

const AllLevels = -1

// NumOfChildren returns the number of descendants of parent down to levels levels below children,
// levels = 0 counts children only, AllLevels counts all descendants.
func NumOfChildren(parent Node, levels int) int {
	p, is := parent.(Container)
	if parent == nil || !is {
		return 0
	}

	c := p.FirstChild()
	i := 0
	for c != nil {
		i++
		if levels != 0 {
			i += NumOfChildren(c, levels-1)
		}
		c = c.Next()
	}
	return i
}

// Children returns children of n or nil if n is not a container.
func Children(n Node) []Node {
	c, is := n.(Container)
	if n == nil || !is {
		return nil
	}

	res := make([]Node, 0)
	for ch := c.FirstChild(); ch != nil; ch = ch.Next() {
		res = append(res, ch)
	}
	return res
}

// Detach removes n from its parent.
func Detach(n Node) {
	if n == nil || n.Parent() == nil {
		return
	}

	p := n.Parent()
	np := n.Prev()
	nn := n.Next()

	if np == nil {
		p.SetFirstChild(nn)
	} else {
		np.SetNext(nn)
	}
	if nn == nil {
		p.SetLastChild(np)
	} else {
		nn.SetPrev(np)
	}
	n.SetPrev(nil)
	n.SetNext(nil)
	n.SetParent(nil)
}

// AppendChild detaches node and appends it as the last child of parent.
func AppendChild(parent Container, node Node) {
	if parent == nil || node == nil {
		return
	}

	Detach(node)
	appendChild(parent, node)
}

// Clone returns a detached deep copy of n.
func Clone(n Node) Node {
	switch nn := n.(type) {
	case *Text:
		return NewText(nn.text)
	case *Element:
		res := &Element{tag: nn.tag, id: nn.id, classes: nn.Classes(), attrs: nn.DeclaredAttrs()}
		cloneChildren(nn, res)
		return res
	case *Root:
		res := NewRoot()
		cloneChildren(nn, res)
		return res
	}
	return nil
}

func cloneChildren(from, to Container) {
	for c := from.FirstChild(); c != nil; c = c.Next() {
		appendChild(to, Clone(c))
	}
}

// NodeVisitor is called for each visited node, results tell whether to visit children of n
// and next siblings of n.
type NodeVisitor func(n Node) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk visits n and its descendants in pre-order.
func Walk(n Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode(n Node, v NodeVisitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	c, is := n.(Container)
	if vc && is {
		if rtl {
			for ch := c.LastChild(); ch != nil && vc; ch = ch.Prev() {
				vc = visitNode(ch, v, true)
			}
		} else {
			for ch := c.FirstChild(); ch != nil && vc; ch = ch.Next() {
				vc = visitNode(ch, v, false)
			}
		}
	}

	return vs
}

type NodeFilter func(n Node) bool

// Search returns descendants of n (n included) satisfying nf in document order.
// Descendants of a matching node are searched only if deepSearch is set.
func Search(n Node, nf NodeFilter, deepSearch bool) []Node {
	res := make([]Node, 0)
	Walk(n, WalkLtr, func(nn Node) (vc, vs bool) {
		if nf(nn) {
			res = append(res, nn)
			return deepSearch, true
		}
		return true, true
	})
	return res
}

// Closest returns the first element satisfying nf among n and its ancestors, or nil.
// Non-element nodes are skipped.
func Closest(n Node, nf NodeFilter) *Element {
	for n != nil {
		if e, is := n.(*Element); is && nf(e) {
			return e
		}

		p := n.Parent()
		if p == nil {
			break
		}
		n = p
	}
	return nil
}

func IsNot(f NodeFilter) NodeFilter {
	return func(n Node) bool {
		return !f(n)
	}
}

func IsAny(fs ...NodeFilter) NodeFilter {
	return func(n Node) bool {
		for _, f := range fs {
			if f(n) {
				return true
			}
		}
		return false
	}
}

func IsAll(fs ...NodeFilter) NodeFilter {
	return func(n Node) bool {
		for _, f := range fs {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

func IsA(kinds ...Kind) NodeFilter {
	return func(n Node) bool {
		k := n.Kind()
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

func elementFilter(f func(e *Element) bool) NodeFilter {
	return func(n Node) bool {
		e, is := n.(*Element)
		return is && f(e)
	}
}

// HasTag matches elements with given tag, case-insensitively.
func HasTag(tag string) NodeFilter {
	fold := cases.Fold()
	tag = fold.String(tag)
	return elementFilter(func(e *Element) bool {
		return fold.String(e.tag) == tag
	})
}

func HasID(id string) NodeFilter {
	return elementFilter(func(e *Element) bool {
		return e.id == id
	})
}

// HasClasses matches elements having every one of names.
func HasClasses(names ...string) NodeFilter {
	return elementFilter(func(e *Element) bool {
		for _, name := range names {
			if !e.HasClass(name) {
				return false
			}
		}
		return true
	})
}

// HasAttr matches elements having attribute key; if value is not empty the attribute must be equal to it.
func HasAttr(key, value string) NodeFilter {
	return elementFilter(func(e *Element) bool {
		v, present := e.Attr(key)
		return present && (value == "" || v == value)
	})
}

// Matches returns a conjunctive filter for tag, id, classes, and attributes present in d.
// Text of d is ignored. A descriptor without criteria matches any element.
func Matches(d *descriptor.Descriptor) NodeFilter {
	if d.IsEmpty() {
		return IsA(ElementKind)
	}

	fs := []NodeFilter{IsA(ElementKind)}
	if d.Tag != "" {
		fs = append(fs, HasTag(d.Tag))
	}
	if d.ID != "" {
		fs = append(fs, HasID(d.ID))
	}
	if len(d.Classes) > 0 {
		fs = append(fs, HasClasses(d.Classes...))
	}
	for _, a := range d.Attrs {
		fs = append(fs, HasAttr(a.Key, a.Value))
	}
	return IsAll(fs...)
}
