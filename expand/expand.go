// Package expand combines scanner, builder, and serializers into an expansion engine.
package expand

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"

	"github.com/ava12/zen/builder"
	"github.com/ava12/zen/descriptor"
	"github.com/ava12/zen/host"
	"github.com/ava12/zen/markup"
	"github.com/ava12/zen/scanner"
	"github.com/ava12/zen/source"
	"github.com/ava12/zen/tree"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClassMode selects how repeated .class tokens are kept, default is descriptor.MultiClass.
func WithClassMode(mode descriptor.ClassMode) Option {
	return func(e *Engine) {
		e.opts.Classes = mode
	}
}

// WithStrict makes element substrings with unexpected characters fail.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.opts.Strict = strict
	}
}

// WithLogger sets the logger receiving expansion events, default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Engine expands templates. It is immutable and safe for concurrent use.
type Engine struct {
	opts descriptor.Options
	log  zerolog.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Options returns descriptor parser options used by the engine.
func (e *Engine) Options() descriptor.Options {
	return e.opts
}

// Expand expands an unnamed template.
func (e *Engine) Expand(template string) (*Result, error) {
	return e.ExpandSource(source.New("", template))
}

// ExpandNamed expands a template, name is used in error messages.
func (e *Engine) ExpandNamed(name, template string) (*Result, error) {
	return e.ExpandSource(source.New(name, template))
}

// ExpandSource expands a template from src. The whole expansion fails on the first error.
func (e *Engine) ExpandSource(src *source.Source) (*Result, error) {
	b := builder.New(e.opts, e.log)
	if err := b.Build(scanner.New(src)); err != nil {
		e.log.Debug().Err(err).Str("source", src.Name()).Msg("expansion failed")
		return nil, err
	}

	e.log.Debug().
		Str("source", src.Name()).
		Int("nodes", tree.NumOfChildren(b.Root(), tree.AllLevels)).
		Msg("template expanded")
	return &Result{root: b.Root(), opts: e.opts}, nil
}

// Expand expands template with a new engine configured by opts.
func Expand(template string, opts ...Option) (*Result, error) {
	return New(opts...).Expand(template)
}

// Result is an expanded tree. Result methods never modify the tree.
type Result struct {
	root *tree.Root
	opts descriptor.Options
}

// Root returns the tree root. The tree must not be modified.
func (r *Result) Root() *tree.Root {
	return r.root
}

// Nodes returns detached deep copies of the top-level nodes.
func (r *Result) Nodes() []tree.Node {
	res := make([]tree.Node, 0)
	for n := r.root.FirstChild(); n != nil; n = n.Next() {
		res = append(res, tree.Clone(n))
	}
	return res
}

func (r *Result) Markup() string {
	return markup.String(r.root)
}

// WriteMarkup streams markup to w.
func (r *Result) WriteMarkup(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if e := markup.Render(bw, r.root); e != nil {
		return e
	}
	return bw.Flush()
}

// MinifiedMarkup returns markup passed through the HTML minifier.
func (r *Result) MinifiedMarkup() (string, error) {
	return markup.Minify(r.Markup())
}

// AttachTo appends host copies of the top-level nodes to container. May be called repeatedly.
func (r *Result) AttachTo(h host.Host, container host.Handle) error {
	return host.Attach(h, container, r.root)
}

// Find returns elements matching selector in document order.
// selector uses element substring syntax: tag, #id, .classes, [attributes]; text is ignored.
func (r *Result) Find(selector string) ([]*tree.Element, error) {
	d, e := descriptor.Parse(nil, selector, r.opts)
	if e != nil {
		return nil, e
	}

	nodes := tree.Search(r.root, tree.Matches(d), true)
	res := make([]*tree.Element, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, n.(*tree.Element))
	}
	return res, nil
}
