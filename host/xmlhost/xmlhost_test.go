package xmlhost

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestAttachToElement(t *testing.T) {
	doc := etree.NewDocument()
	body := doc.CreateElement("body")
	root := build(t, "section#s.a.b>p[lang=en]{text}+p{more}")

	require.NoError(t, host.Attach(New(), body, root))
	s, e := doc.WriteToString()
	require.NoError(t, e)
	assert.Equal(t, `<body><section class="a b" id="s"><p lang="en">text</p><p>more</p></section></body>`, s)

	sec := body.SelectElement("section")
	require.NotNil(t, sec)
	assert.Equal(t, "s", sec.SelectAttrValue("id", ""))
	assert.Len(t, sec.SelectElements("p"), 2)

	require.NoError(t, host.Attach(New(), body, root))
	assert.Len(t, body.SelectElements("section"), 2)
}

func TestAttachToDocument(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, host.Attach(New(), doc, build(t, "root>item{a&b}")))
	s, e := doc.WriteToString()
	require.NoError(t, e)
	assert.Equal(t, `<root><item>a&amp;b</item></root>`, s)
	assert.Equal(t, "root", doc.Root().Tag)
}

func TestInvalidHandles(t *testing.T) {
	h := New()
	txt, _ := h.CreateText("x")
	el, _ := h.CreateElement("div")

	assert.ErrorIs(t, h.SetAttribute(txt, "k", "v"), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.SetID(etree.NewDocument(), "x"), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.AppendChild(txt, el), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.AppendChild(el, "text"), host.ErrInvalidHandle)
	assert.ErrorIs(t, h.AppendChild(el, (*etree.Element)(nil)), host.ErrInvalidHandle)

	require.NoError(t, h.AppendChild(el, txt))
	other, _ := h.CreateElement("p")
	assert.ErrorIs(t, h.AppendExisting(other, txt), host.ErrInvalidHandle)
}

func TestSetAttributeReplaces(t *testing.T) {
	h := New()
	el, _ := h.CreateElement("a")
	require.NoError(t, h.SetAttribute(el, "href", "/x"))
	require.NoError(t, h.SetAttribute(el, "href", "/y"))
	e := el.(*etree.Element)
	assert.Len(t, e.Attr, 1)
	assert.Equal(t, "/y", e.SelectAttrValue("href", ""))
}
