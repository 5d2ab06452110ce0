package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ExtractJSONList extracts a list of T from raw model output. It accepts a bare
// array or an object wrapping the array, preferring an "items" key and
// otherwise taking the first array-valued field in key order. Markdown fences,
// chatter around the JSON, comments and ".5"-style numbers are tolerated.
// Elements are not validated; callers filter them individually.
func ExtractJSONList[T any](raw string) ([]T, error) {
	block := cleanJSON(raw)
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON found in response", ErrInvalidOutput)
	}

	list := json.RawMessage(block)
	if block[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(block), &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		if list = pickArray(obj); list == nil {
			return nil, fmt.Errorf("%w: no array found in response object", ErrInvalidOutput)
		}
	}

	var items []T
	if err := json.Unmarshal(list, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return items, nil
}

func pickArray(obj map[string]json.RawMessage) json.RawMessage {
	isArray := func(v json.RawMessage) bool {
		t := strings.TrimSpace(string(v))
		return t != "" && t[0] == '['
	}
	if v, ok := obj["items"]; ok && isArray(v) {
		return v
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if isArray(obj[k]) {
			return obj[k]
		}
	}
	return nil
}

// cleanJSON returns the first balanced object or array in raw with comments
// removed and leading-dot numbers repaired, or "" when there is none.
func cleanJSON(raw string) string {
	block := firstBlock(stripCodeFences(raw))
	if block == "" {
		return ""
	}
	return repairNumbers(stripComments(block))
}

// stripCodeFences drops markdown fence lines, keeping what they enclose.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "```") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// lexer tracks whether a byte stream is inside a JSON string literal.
type lexer struct {
	inString bool
	escaped  bool
}

// code consumes c and reports whether it is structural, i.e. outside any
// string literal and not a quote.
func (l *lexer) code(c byte) bool {
	switch {
	case l.escaped:
		l.escaped = false
		return false
	case l.inString && c == '\\':
		l.escaped = true
		return false
	case c == '"':
		l.inString = !l.inString
		return false
	}
	return !l.inString
}

// firstBlock finds the first balanced object or array.
func firstBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}
	var lx lexer
	depth := 0
	for i := start; i < len(s); i++ {
		if !lx.code(s[i]) {
			continue
		}
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			if depth--; depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripComments removes // and /* */ comments outside string values. Models
// add them despite being told not to.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.code(c) && c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end == -1 {
					return b.String()
				}
				i += end + 3
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// repairNumbers rewrites ".8" and "-.3" outside strings as "0.8" and "-0.3".
func repairNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.code(c) && c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(lastNonSpace(s[:i])) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func lastNonSpace(s string) byte {
	t := strings.TrimRight(s, " \t\r\n")
	if t == "" {
		return 0
	}
	return t[len(t)-1]
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
