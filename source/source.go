// Package source defines named template text with offset to line/column mapping.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source is an immutable template.
// Offsets are byte offsets, columns count runes starting from 1.
type Source struct {
	name       string
	content    string
	lineStarts []int
}

// New creates a Source, name is used in error messages and may be empty.
func New(name, content string) *Source {
	s := &Source{name: name, content: content}
	lineCnt := strings.Count(content, "\n") + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() string {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns 1-based line and column for byte offset pos, pos is clamped to content bounds.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	return sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
}

// Snippet returns up to size runes of content starting before runes before byte offset pos.
func (s *Source) Snippet(pos, before, size int) string {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	start := pos
	for ; before > 0 && start > 0; before-- {
		_, w := utf8.DecodeLastRuneInString(s.content[:start])
		start -= w
	}

	end := start
	for ; size > 0 && end < len(s.content); size-- {
		_, w := utf8.DecodeRuneInString(s.content[end:])
		end += w
	}

	return s.content[start:end]
}

// Pos is a position in a Source, it implements zen.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates a Pos for byte offset pos in src.
func NewPos(src *Source, pos int) Pos {
	res := Pos{src: src, pos: pos}
	if src != nil {
		res.line, res.col = src.LineCol(pos)
	}
	return res
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
