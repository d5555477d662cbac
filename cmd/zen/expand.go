package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava12/zen/expand"
	"github.com/ava12/zen/internal/logging"
	"github.com/ava12/zen/scanner"
	"github.com/ava12/zen/source"
)

const (
	formatHTML  = "html"
	formatMin   = "min"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTree  = "tree"
	formatUnits = "units"
)

type expandFlags struct {
	files  []string
	format string
	strict bool
}

func newExpandCmd(a *app) *cobra.Command {
	f := &expandFlags{}
	cmd := &cobra.Command{
		Use:   "expand [template]...",
		Short: "Expand templates from arguments, files, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				a.opts.Strict = f.strict
			}
			return runExpand(cmd, a, f, args)
		},
	}

	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "template file, may be repeated")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: html, min, json, yaml, tree, or units (default html, min if minify is set)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject unexpected characters in element strings")
	return cmd
}

func readSources(cmd *cobra.Command, f *expandFlags, args []string) ([]*source.Source, error) {
	var res []*source.Source
	for i, arg := range args {
		res = append(res, source.New("arg"+strconv.Itoa(i+1), arg))
	}

	for _, name := range f.files {
		content, e := os.ReadFile(name)
		if e != nil {
			return nil, fmt.Errorf("failed to read template: %w", e)
		}
		res = append(res, source.New(name, string(content)))
	}

	if len(res) == 0 {
		content, e := io.ReadAll(cmd.InOrStdin())
		if e != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", e)
		}
		res = append(res, source.New("stdin", string(content)))
	}
	return res, nil
}

func runExpand(cmd *cobra.Command, a *app, f *expandFlags, args []string) error {
	format := f.format
	if format == "" {
		format = formatHTML
		if a.opts.Minify {
			format = formatMin
		}
	}
	switch format {
	case formatHTML, formatMin, formatJSON, formatYAML, formatTree, formatUnits:
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	sources, e := readSources(cmd, f, args)
	if e != nil {
		return e
	}

	out := cmd.OutOrStdout()
	if format == formatUnits {
		return writeUnits(out, sources)
	}

	logger := logging.GetLogger("expand")
	defer logging.LogOperationStart(logger, "expand")()

	en := expand.New(append(a.opts.EngineOptions(), expand.WithLogger(logger))...)
	for _, src := range sources {
		r, e := en.ExpandSource(src)
		if e == nil {
			e = write(out, format, r)
		}
		if e != nil {
			return e
		}
	}
	return nil
}

// writeUnits lists scanned units of each source without building trees.
func writeUnits(w io.Writer, sources []*source.Source) error {
	for _, src := range sources {
		units, e := scanner.Scan(src)
		if e != nil {
			return e
		}
		for _, u := range units {
			_, e = fmt.Fprintf(w, "%s:%d:%d\t%s\t%s\n", u.SourceName(), u.Line(), u.Col(), u.Op(), u.Body())
			if e != nil {
				return e
			}
		}
	}
	return nil
}

func write(w io.Writer, format string, r *expand.Result) error {
	var (
		s string
		e error
	)
	switch format {
	case formatHTML:
		s = r.Markup() + "\n"
	case formatMin:
		s, e = r.MinifiedMarkup()
		s += "\n"
	case formatJSON:
		s, e = toJSON(r.Root())
	case formatYAML:
		s, e = toYAML(r.Root())
	case formatTree:
		s = toTree(w, r.Root())
	}
	if e == nil {
		_, e = io.WriteString(w, s)
	}
	return e
}
