package htmlhost

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ava12/zen/builder"
	"github.com/ava12/zen/descriptor"
	"github.com/ava12/zen/host"
	"github.com/ava12/zen/scanner"
	"github.com/ava12/zen/source"
	"github.com/ava12/zen/tree"
)

var _ host.Host = (*Host)(nil)

func build(t *testing.T, tpl string) *tree.Root {
	t.Helper()
	b := builder.New(descriptor.Options{}, zerolog.Nop())
	require.NoError(t, b.Build(scanner.New(source.New("", tpl))))
	return b.Root()
}

func body(t *testing.T) *html.Node {
	t.Helper()
	doc, e := html.Parse(strings.NewReader("<html><head></head><body></body></html>"))
	require.NoError(t, e)
	var res *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			res = n
		}
		for c := n.FirstChild; c != nil && res == nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	require.NotNil(t, res)
	return res
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	sb := &strings.Builder{}
	require.NoError(t, RenderChildren(sb, n))
	return sb.String()
}

func TestAttach(t *testing.T) {
	b := body(t)
	root := build(t, "ul#menu.nav>li.item{one}+li.item[data-k=v]{two}")

	require.NoError(t, host.Attach(New(), b, root))
	assert.Equal(t, `<ul class="nav" id="menu"><li class="item">one</li><li data-k="v" class="item">two</li></ul>`, render(t, b))
	assert.Equal(t, atom.Ul, b.FirstChild.DataAtom)

	require.NoError(t, host.Attach(New(), b, root))
	n := 0
	for c := b.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestTextEscapedByRenderer(t *testing.T) {
	b := body(t)
	require.NoError(t, host.Attach(New(), b, build(t, "p{a<b}")))
	assert.Equal(t, "<p>a&lt;b</p>", render(t, b))
}

func TestSetAttributeReplaces(t *testing.T) {
	h := New()
	el, _ := h.CreateElement("a")
	require.NoError(t, h.SetAttribute(el, "href", "/x"))
	require.NoError(t, h.SetAttribute(el, "href", "/y"))
	require.NoError(t, h.SetClasses(el, []string{"a", "b"}))
	require.NoError(t, h.SetID(el, "i"))
	assert.Equal(t, []html.Attribute{
		{Key: "href", Val: "/y"},
		{Key: "class", Val: "a b"},
		{Key: "id", Val: "i"},
	}, el.(*html.Node).Attr)
}

func TestInvalidHandles(t *testing.T) {
	h := New()
	txt, _ := h.CreateText("x")
	el, _ := h.CreateElement("div")

	assert.ErrorIs(t, h.SetAttribute(txt, "k", "v"), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.SetID("div", "x"), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.AppendChild(txt, el), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.AppendChild(el, (*html.Node)(nil)), host.ErrInvalidHandle)

	require.NoError(t, h.AppendChild(el, txt))
	other, _ := h.CreateElement("p")
	assert.ErrorIs(t, h.AppendExisting(other, txt), host.ErrInvalidHandle)
}

func TestDocumentContainer(t *testing.T) {
	doc := &html.Node{Type: html.DocumentNode}
	require.NoError(t, host.Attach(New(), doc, build(t, "b{x}+i")))
	assert.Equal(t, "<b>x</b><i></i>", render(t, doc))
}
