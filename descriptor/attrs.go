package descriptor

import (
	"strings"

	"github.com/ava12/zen"
)

// Attr is a single attribute, Value is empty for bare keys.
type Attr struct {
	Key, Value string
}

// Attrs is an ordered attribute list with unique keys.
type Attrs []Attr

// Get returns the value for key and whether the key is present.
func (as Attrs) Get(key string) (string, bool) {
	for _, a := range as {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Set overwrites the value of an existing key keeping its position or appends a new attribute.
func (as Attrs) Set(key, value string) Attrs {
	for i := range as {
		if as[i].Key == key {
			as[i].Value = value
			return as
		}
	}
	return append(as, Attr{key, value})
}

const spaces = " \t\n\r\f\v"

// valueProtected are characters unescaped in attribute values.
const valueProtected = spaces + "]"

func isSpace(c byte) bool {
	return strings.IndexByte(spaces, c) >= 0
}

func isAttrNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseAttrs parses the content of an attribute group (without brackets) into as.
// Tokens are "key" or "key=value" separated by whitespace not preceded by a backslash.
// Values are unescaped for whitespace and "]".
// element is the whole element substring, it is only used in error messages.
func ParseAttrs(pos zen.SourcePos, element, content string, as Attrs) (Attrs, error) {
	i := 0
	for {
		for i < len(content) && isSpace(content[i]) {
			i++
		}
		if i >= len(content) {
			return as, nil
		}

		start := i
		for i < len(content) && content[i] != '=' && !isSpace(content[i]) {
			i++
		}
		key := content[start:i]
		if key == "" || !isAttrNameStart(key[0]) {
			return as, invalidAttributeNameError(pos, element)
		}

		value := ""
		if i < len(content) && content[i] == '=' {
			i++
			start = i
			for i < len(content) {
				if content[i] == '\\' && i+1 < len(content) && isSpace(content[i+1]) {
					i += 2
				} else if isSpace(content[i]) {
					break
				} else {
					i++
				}
			}
			value = Unescape(content[start:i], valueProtected)
		}

		as = as.Set(key, value)
	}
}
