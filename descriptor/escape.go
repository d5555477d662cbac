package descriptor

import (
	"strings"
)

// Unescape removes a backslash preceding any of protected characters.
// Other backslashes are kept, scanning is left to right and non-overlapping.
func Unescape(s, protected string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && strings.IndexByte(protected, s[i+1]) >= 0 {
			i++
			c = s[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

// closingIndex returns the index of the first closing byte in s that is not preceded by a backslash
// starting at offset from, or -1.
func closingIndex(s string, from int, closing byte) int {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == closing {
				i++
			}
		case closing:
			return i
		}
	}
	return -1
}

// GroupEnd returns the index just past the bracket or brace group starting at s[start],
// or -1 if s[start] does not open a non-empty closed group.
func GroupEnd(s string, start int) int {
	if start >= len(s) {
		return -1
	}

	var closing byte
	switch s[start] {
	case '[':
		closing = ']'
	case '{':
		closing = '}'
	default:
		return -1
	}

	i := closingIndex(s, start+1, closing)
	if i <= start+1 {
		return -1
	}
	return i + 1
}
