// Package host attaches copies of element trees to host documents.
// A host document is anything able to create element and text nodes and link them together,
// see Host. Adapters for golang.org/x/net/html and github.com/beevik/etree are in subpackages.
package host

import (
	"errors"

	"github.com/ava12/zen/tree"
)

// Handle is a host node, its type is defined by the Host implementation.
type Handle = any

// ErrInvalidHandle is returned (possibly wrapped) by hosts given a handle of unexpected type.
var ErrInvalidHandle = errors.New("invalid host node handle")

// Host is a tree construction capability. Every method may fail, errors are returned to the caller unchanged.
type Host interface {
	CreateElement(tag string) (Handle, error)
	CreateText(text string) (Handle, error)
	AppendChild(parent, child Handle) error
	SetAttribute(node Handle, key, value string) error
	SetID(node Handle, id string) error
	SetClasses(node Handle, classes []string) error
	// AppendExisting appends a complete node to a host container not created by this package.
	AppendExisting(container, node Handle) error
}

// Attach builds a fresh host copy of each node and appends it to container in order.
// A root node is attached as its children. Attach never modifies nodes, so it may be repeated.
// Stops on the first host error, nodes attached before the error stay attached.
func Attach(h Host, container Handle, nodes ...tree.Node) error {
	for _, n := range nodes {
		if r, is := n.(*tree.Root); is {
			if e := Attach(h, container, tree.Children(r)...); e != nil {
				return e
			}
			continue
		}

		hn, e := Copy(h, n)
		if e == nil && hn != nil {
			e = h.AppendExisting(container, hn)
		}
		if e != nil {
			return e
		}
	}
	return nil
}

// Copy creates a detached host copy of n with all its descendants.
// Returns nil handle for a root or nil node.
func Copy(h Host, n tree.Node) (Handle, error) {
	switch nn := n.(type) {
	case *tree.Text:
		return h.CreateText(nn.Text())
	case *tree.Element:
		return copyElement(h, nn)
	}
	return nil, nil
}

func copyElement(h Host, el *tree.Element) (Handle, error) {
	hn, e := h.CreateElement(el.Tag())
	if e != nil {
		return nil, e
	}

	for _, a := range el.Attrs() {
		switch {
		case a.Key == "id" && el.ID() != "":
			e = h.SetID(hn, el.ID())
		case a.Key == "class" && len(el.Classes()) > 0:
			e = h.SetClasses(hn, el.Classes())
		default:
			e = h.SetAttribute(hn, a.Key, a.Value)
		}
		if e != nil {
			return nil, e
		}
	}

	for c := el.FirstChild(); c != nil; c = c.Next() {
		hc, e := Copy(h, c)
		if e == nil {
			e = h.AppendChild(hn, hc)
		}
		if e != nil {
			return nil, e
		}
	}
	return hn, nil
}
