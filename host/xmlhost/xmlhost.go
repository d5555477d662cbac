// Package xmlhost implements host.Host for github.com/beevik/etree documents.
// Element handles are *etree.Element values, text handles are *etree.CharData values;
// an *etree.Document may be used as a container.
package xmlhost

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/ava12/zen/host"
)

// Host creates etree tokens, it has no state.
type Host struct{}

func New() *Host {
	return &Host{}
}

func element(h host.Handle) (*etree.Element, error) {
	switch n := h.(type) {
	case *etree.Element:
		if n != nil {
			return n, nil
		}
	case *etree.Document:
		if n != nil {
			return &n.Element, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", host.ErrInvalidHandle, h)
}

func token(h host.Handle) (etree.Token, error) {
	switch n := h.(type) {
	case *etree.Element:
		if n != nil {
			return n, nil
		}
	case *etree.CharData:
		if n != nil {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", host.ErrInvalidHandle, h)
}

func (*Host) CreateElement(tag string) (host.Handle, error) {
	return etree.NewElement(tag), nil
}

func (*Host) CreateText(text string) (host.Handle, error) {
	return etree.NewText(text), nil
}

func appendChild(parent, child host.Handle) error {
	p, e := element(parent)
	if e != nil {
		return e
	}
	c, e := token(child)
	if e != nil {
		return e
	}
	if c.Parent() != nil {
		return fmt.Errorf("%w: token already has a parent", host.ErrInvalidHandle)
	}

	p.AddChild(c)
	return nil
}

func (*Host) AppendChild(parent, child host.Handle) error {
	return appendChild(parent, child)
}

func (*Host) AppendExisting(container, child host.Handle) error {
	return appendChild(container, child)
}

func (*Host) SetAttribute(n host.Handle, key, value string) error {
	if _, is := n.(*etree.Document); is {
		return fmt.Errorf("%w: cannot set attributes of a document", host.ErrInvalidHandle)
	}
	el, e := element(n)
	if e != nil {
		return e
	}

	el.CreateAttr(key, value)
	return nil
}

func (h *Host) SetID(n host.Handle, id string) error {
	return h.SetAttribute(n, "id", id)
}

func (h *Host) SetClasses(n host.Handle, classes []string) error {
	return h.SetAttribute(n, "class", strings.Join(classes, " "))
}
