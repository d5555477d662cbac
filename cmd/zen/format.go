package main

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ava12/zen/tree"
)

type attrView struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// nodeView is a serializable node, either an element or a text leaf.
type nodeView struct {
	Tag      string     `json:"tag,omitempty" yaml:"tag,omitempty"`
	ID       string     `json:"id,omitempty" yaml:"id,omitempty"`
	Classes  []string   `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attrs    []attrView `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Children []nodeView `json:"children,omitempty" yaml:"children,omitempty"`
}

func viewOf(c tree.Container) []nodeView {
	res := make([]nodeView, 0)
	for n := c.FirstChild(); n != nil; n = n.Next() {
		switch nn := n.(type) {
		case *tree.Text:
			res = append(res, nodeView{Text: nn.Text()})
		case *tree.Element:
			v := nodeView{Tag: nn.Tag(), ID: nn.ID(), Classes: nn.Classes()}
			for _, a := range nn.DeclaredAttrs() {
				v.Attrs = append(v.Attrs, attrView{a.Key, a.Value})
			}
			if nn.FirstChild() != nil {
				v.Children = viewOf(nn)
			}
			res = append(res, v)
		}
	}
	return res
}

func toJSON(root *tree.Root) (string, error) {
	content, e := json.MarshalIndent(viewOf(root), "", "  ")
	return string(content) + "\n", e
}

func toYAML(root *tree.Root) (string, error) {
	content, e := yaml.Marshal(viewOf(root))
	return string(content), e
}

// treeStyles colour tree output, colours are dropped when the renderer output is not a terminal.
type treeStyles struct {
	tag, id, class, attr, text lipgloss.Style
}

func newTreeStyles(w io.Writer) treeStyles {
	r := lipgloss.NewRenderer(w)
	return treeStyles{
		tag:   r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}),
		id:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF5F"}),
		class: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#87D787"}),
		attr:  r.NewStyle().Faint(true),
		text:  r.NewStyle().Italic(true),
	}
}

func toTree(w io.Writer, root *tree.Root) string {
	st := newTreeStyles(w)
	sb := &strings.Builder{}
	tree.Walk(root, tree.WalkLtr, func(n tree.Node) (bool, bool) {
		level := tree.NodeLevel(n) - 1
		if level < 0 {
			return true, true
		}

		sb.WriteString(strings.Repeat("  ", level))
		switch nn := n.(type) {
		case *tree.Text:
			sb.WriteString(st.text.Render(strconv.Quote(nn.Text())))
		case *tree.Element:
			sb.WriteString(st.tag.Render(nn.Tag()))
			if nn.ID() != "" {
				sb.WriteString(st.id.Render("#" + nn.ID()))
			}
			for _, c := range nn.Classes() {
				sb.WriteString(st.class.Render("." + c))
			}
			for _, a := range nn.DeclaredAttrs() {
				sb.WriteString(" " + st.attr.Render(a.Key+"="+strconv.Quote(a.Value)))
			}
		}
		sb.WriteString("\n")
		return true, true
	})
	return sb.String()
}
