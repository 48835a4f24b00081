// Package tagname implements the shared name-token grammar used by all
// recognizers: [A-Za-z_][A-Za-z0-9_-]*.
package tagname

import "strings"

// Extract returns the leading name token of a delimiter body after
// trimming surrounding whitespace, or "" if the body does not start with
// a name token.
func Extract(body string) string {
	body = strings.TrimSpace(body)
	if body == "" || !isNameStart(body[0]) {
		return ""
	}
	i := 1
	for i < len(body) && isNameByte(body[i]) {
		i++
	}
	return body[:i]
}

// Valid reports whether s is exactly one name token. Names declared in a
// hierarchy that fail this can never be matched by any recognizer.
func Valid(s string) bool {
	return s != "" && Extract(s) == s
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || b == '-' || (b >= '0' && b <= '9')
}
