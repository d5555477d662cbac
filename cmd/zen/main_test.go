package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ava12/zen"
	"github.com/ava12/zen/builder"
	"github.com/ava12/zen/scanner"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	e := cmd.Execute()
	return out.String(), e
}

func TestExpandHTML(t *testing.T) {
	out, e := run(t, "", "expand", "ul>li{a}+li{b}", "p.x")
	require.NoError(t, e)
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>\n<p class=\"x\"></p>\n", out)
}

func TestExpandStdinAndFiles(t *testing.T) {
	out, e := run(t, "div>span\n", "expand")
	require.NoError(t, e)
	assert.Equal(t, "<div><span></span></div>\n", out)

	dir := t.TempDir()
	name := filepath.Join(dir, "tpl.zen")
	require.NoError(t, os.WriteFile(name, []byte("section>\n  h1{Title}\n  +p{Body}\n"), 0o644))
	out, e = run(t, "", "expand", "--file", name)
	require.NoError(t, e)
	assert.Equal(t, "<section><h1>Title</h1><p>Body</p></section>\n", out)

	_, e = run(t, "", "expand", "-f", filepath.Join(dir, "missing.zen"))
	assert.ErrorContains(t, e, "failed to read template")
}

func TestExpandErrors(t *testing.T) {
	_, e := run(t, "", "expand", "div>p<nav")
	require.Error(t, e)
	assert.True(t, zen.HasCode(e, builder.AncestorNotFoundError))
	assert.Contains(t, e.Error(), "in arg1 at line 1 col 6")

	_, e = run(t, "", "expand", "--format", "pdf", "div")
	assert.ErrorContains(t, e, "unknown format")

	_, e = run(t, "", "expand", "--strict", "p!")
	assert.Error(t, e)
}

func TestExpandFormats(t *testing.T) {
	out, e := run(t, "", "expand", "--format", "json", "a#i.c[href=/]{x}")
	require.NoError(t, e)
	var nodes []nodeView
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, nodeView{
		Tag:      "a",
		ID:       "i",
		Classes:  []string{"c"},
		Attrs:    []attrView{{Key: "href", Value: "/"}},
		Children: []nodeView{{Text: "x"}},
	}, nodes[0])

	out, e = run(t, "", "expand", "--format", "yaml", "ul>li{a}")
	require.NoError(t, e)
	nodes = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &nodes))
	assert.Equal(t, []nodeView{{Tag: "ul", Children: []nodeView{{Tag: "li", Children: []nodeView{{Text: "a"}}}}}}, nodes)

	out, e = run(t, "", "expand", "--format", "tree", "ul#m>li.a[k=v]{t}")
	require.NoError(t, e)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ul")
	assert.Contains(t, lines[0], "#m")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Contains(t, lines[1], ".a")
	assert.Contains(t, lines[1], `k=`)
	assert.True(t, strings.HasPrefix(lines[2], "    "))
	assert.Contains(t, lines[2], `"t"`)

	out, e = run(t, "", "expand", "--format", "min", "div>p{a}")
	require.NoError(t, e)
	assert.Contains(t, out, "<p>a</p>")
}

func TestExpandUnits(t *testing.T) {
	out, e := run(t, "", "expand", "--format", "units", "ul>li{a > b}\n+li<ul")
	require.NoError(t, e)
	assert.Equal(t, "arg1:1:1\t>\tul\n"+
		"arg1:1:3\t>\tli{a > b}\n"+
		"arg1:2:1\t+\tli\n"+
		"arg1:2:4\t<\tul\n", out)

	_, e = run(t, "", "expand", "--format", "units", "div>>p")
	assert.True(t, zen.HasCode(e, scanner.MissingElementStringError))

	out, e = run(t, "", "expand", "--format", "units", "div>p<span")
	require.NoError(t, e)
	assert.Contains(t, out, "\t<\tspan\n")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "zen.yaml")
	require.NoError(t, os.WriteFile(name, []byte("class_mode: single\nminify: true\n"), 0o644))

	out, e := run(t, "", "--config", name, "config")
	require.NoError(t, e)
	assert.Contains(t, out, "class_mode")
	assert.Contains(t, out, "single")

	out, e = run(t, "", "--config", name, "expand", "p.a.b")
	require.NoError(t, e)
	assert.Contains(t, out, `class="b"`)
	assert.NotContains(t, out, "a b")

	_, e = run(t, "", "--config", filepath.Join(dir, "zen.ini"), "config")
	assert.ErrorContains(t, e, "unsupported config file type")
}
