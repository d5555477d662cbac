// Package markup serializes element trees.
package markup

import (
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/ava12/zen/tree"
)

// writer keeps the first write error and skips all writes after it.
type writer struct {
	w tree.StringWriter
	e error
}

func (w *writer) write(ss ...string) {
	for _, s := range ss {
		if w.e != nil {
			return
		}
		_, w.e = w.w.WriteString(s)
	}
}

// Render writes markup of nodes to w in pre-order.
// A root node is rendered as its children. Element tags are always closed.
// Text and attribute values are written verbatim, without escaping.
func Render(w tree.StringWriter, nodes ...tree.Node) error {
	mw := &writer{w: w}
	for _, n := range nodes {
		mw.node(n)
	}
	return mw.e
}

func (w *writer) node(n tree.Node) {
	switch nn := n.(type) {
	case *tree.Text:
		w.write(nn.Text())
	case *tree.Element:
		w.write("<", nn.Tag())
		for _, a := range nn.Attrs() {
			w.write(" ", a.Key, `="`, a.Value, `"`)
		}
		w.write(">")
		w.children(nn)
		w.write("</", nn.Tag(), ">")
	case *tree.Root:
		w.children(nn)
	}
}

func (w *writer) children(c tree.Container) {
	for ch := c.FirstChild(); ch != nil && w.e == nil; ch = ch.Next() {
		w.node(ch)
	}
}

// String returns markup of nodes.
func String(nodes ...tree.Node) string {
	b := &strings.Builder{}
	_ = Render(b, nodes...)
	return b.String()
}

const mediaType = "text/html"

var (
	minifier *minify.M
	once     sync.Once
)

func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add(mediaType, &html.Minifier{KeepEndTags: true, KeepQuotes: true, KeepDefaultAttrVals: true})
	})
	return minifier
}

// Minify returns s with insignificant whitespace removed.
func Minify(s string) (string, error) {
	return getMinifier().String(mediaType, s)
}
