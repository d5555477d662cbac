// Package htmlhost implements host.Host for golang.org/x/net/html node trees.
// Handles are *html.Node values.
package htmlhost

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ava12/zen/host"
)

// Host creates x/net/html nodes, it has no state.
type Host struct{}

func New() *Host {
	return &Host{}
}

func node(h host.Handle) (*html.Node, error) {
	n, is := h.(*html.Node)
	if !is || n == nil {
		return nil, fmt.Errorf("%w: %T", host.ErrInvalidHandle, h)
	}
	return n, nil
}

func element(h host.Handle) (*html.Node, error) {
	n, e := node(h)
	if e == nil && n.Type != html.ElementNode {
		e = fmt.Errorf("%w: not an element", host.ErrInvalidHandle)
	}
	return n, e
}

func (*Host) CreateElement(tag string) (host.Handle, error) {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(strings.ToLower(tag))),
	}, nil
}

func (*Host) CreateText(text string) (host.Handle, error) {
	return &html.Node{Type: html.TextNode, Data: text}, nil
}

func appendChild(parent, child host.Handle) error {
	p, e := node(parent)
	if e != nil {
		return e
	}
	if p.Type != html.ElementNode && p.Type != html.DocumentNode {
		return fmt.Errorf("%w: cannot append to node type %d", host.ErrInvalidHandle, p.Type)
	}

	c, e := node(child)
	if e != nil {
		return e
	}
	if c.Parent != nil {
		return fmt.Errorf("%w: node already has a parent", host.ErrInvalidHandle)
	}

	p.AppendChild(c)
	return nil
}

func (*Host) AppendChild(parent, child host.Handle) error {
	return appendChild(parent, child)
}

func (*Host) AppendExisting(container, child host.Handle) error {
	return appendChild(container, child)
}

// SetAttribute replaces the value of an existing attribute or appends a new one.
func (*Host) SetAttribute(n host.Handle, key, value string) error {
	el, e := element(n)
	if e != nil {
		return e
	}

	for i := range el.Attr {
		if el.Attr[i].Namespace == "" && el.Attr[i].Key == key {
			el.Attr[i].Val = value
			return nil
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: key, Val: value})
	return nil
}

func (h *Host) SetID(n host.Handle, id string) error {
	return h.SetAttribute(n, "id", id)
}

func (h *Host) SetClasses(n host.Handle, classes []string) error {
	return h.SetAttribute(n, "class", strings.Join(classes, " "))
}

// RenderChildren writes markup of children of n, e.g. of a fragment container.
func RenderChildren(w io.Writer, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := html.Render(w, c); e != nil {
			return e
		}
	}
	return nil
}
