// Package descriptor parses a single element substring like div#id.class[key=value]{text}.
package descriptor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ava12/zen"
)

// ClassMode selects how repeated class tokens are kept.
type ClassMode int

const (
	// MultiClass keeps every distinct class in declaration order.
	MultiClass ClassMode = iota
	// SingleClass keeps only the last class.
	SingleClass
)

// Options control the parser.
type Options struct {
	Classes ClassMode
	// Strict makes the parser reject characters that start no element part.
	Strict bool
}

// Descriptor is a parsed element substring.
type Descriptor struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   Attrs
	Text    string
}

// IsVoid reports whether the descriptor produces no node.
func (d *Descriptor) IsVoid() bool {
	return d.Tag == "" && d.Text == ""
}

// IsEmpty reports whether the descriptor carries no match criteria at all.
func (d *Descriptor) IsEmpty() bool {
	return d.Tag == "" && d.ID == "" && len(d.Classes) == 0 && len(d.Attrs) == 0
}

func (d *Descriptor) addClass(name string, mode ClassMode) {
	if mode == SingleClass {
		d.Classes = append(d.Classes[:0], name)
		return
	}

	for _, c := range d.Classes {
		if c == name {
			return
		}
	}
	d.Classes = append(d.Classes, name)
}

func isWordRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordEnd(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	return i
}

// DecodeText unescapes "}" and applies text substitutions:
// each pair of spaces becomes two no-break spaces and each literal \n becomes a line feed.
func DecodeText(s string) string {
	s = Unescape(s, "}")
	s = strings.ReplaceAll(s, "  ", "\u00a0\u00a0")
	return strings.ReplaceAll(s, `\n`, "\n")
}

// Parse parses element substring s.
// pos is used for error positions and may be nil.
// A word is a tag only at the very start of s, so attributes written before the tag leave
// the descriptor without a tag. Attribute groups following a text group are ignored.
func Parse(pos zen.SourcePos, s string, opts Options) (*Descriptor, error) {
	d := &Descriptor{}
	i := wordEnd(s, 0)
	d.Tag = s[:i]
	hasText := false

	for i < len(s) {
		c := s[i]
		switch {
		case c == '#' || c == '.':
			end := wordEnd(s, i+1)
			if end == i+1 {
				break
			}

			if c == '#' {
				d.ID = s[i+1 : end]
			} else {
				d.addClass(s[i+1:end], opts.Classes)
			}
			i = end
			continue

		case c == '[':
			end := GroupEnd(s, i)
			if end < 0 {
				break
			}

			if !hasText {
				var e error
				d.Attrs, e = ParseAttrs(pos, s, s[i+1:end-1], d.Attrs)
				if e != nil {
					return nil, e
				}
			}
			i = end
			continue

		case c == '{':
			end := GroupEnd(s, i)
			if end < 0 {
				break
			}

			d.Text = DecodeText(s[i+1 : end-1])
			hasText = true
			i = end
			continue

		case isSpace(c):
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if opts.Strict {
			return nil, unexpectedCharError(pos, s, r)
		}
		i += size
	}

	return d, nil
}

// String returns the canonical element substring of d.
func (d *Descriptor) String() string {
	b := &strings.Builder{}
	b.WriteString(d.Tag)
	if d.ID != "" {
		b.WriteString("#" + d.ID)
	}
	for _, c := range d.Classes {
		b.WriteString("." + c)
	}
	if len(d.Attrs) > 0 {
		b.WriteByte('[')
		for i, a := range d.Attrs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(a.Key)
			if a.Value != "" {
				b.WriteString("=" + escapeValue(a.Value))
			}
		}
		b.WriteByte(']')
	}
	if d.Text != "" {
		b.WriteString("{" + strings.ReplaceAll(d.Text, "}", "\\}") + "}")
	}
	return b.String()
}

func escapeValue(v string) string {
	return strings.NewReplacer(" ", "\\ ", "]", "\\]").Replace(v)
}
