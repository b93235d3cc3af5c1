package document

import (
	"strings"

	"github.com/plotfence/plotfence/pkg/errors"
)

// Attributes is an ordered list of key/value pairs from a fence info
// string. Order is preserved so residual attributes re-emit in the order
// written; duplicate keys resolve last-wins at lookup time.
type Attributes [][2]string

// Get returns the value for key. When the key appears several times the
// last occurrence wins.
func (a Attributes) Get(key string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i][0] == key {
			return a[i][1], true
		}
	}
	return "", false
}

// Without returns a copy with every occurrence of the given keys removed.
func (a Attributes) Without(keys ...string) Attributes {
	out := make(Attributes, 0, len(a))
	for _, kv := range a {
		drop := false
		for _, key := range keys {
			if kv[0] == key {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kv)
		}
	}
	return out
}

// BlockInfo is the parsed form of a fence info string.
type BlockInfo struct {
	ID      string
	Classes []string
	Attrs   Attributes
}

// ParseInfo parses a fence info string. Two forms are recognized: a bare
// word, which becomes the block's single class ("```python"), and a
// pandoc-style attribute block ("```{#id .class key=val key=\"quoted\"}").
// Inside braces, bare words are treated as classes. Duplicate ids keep
// the last occurrence, matching attribute lookup semantics.
func ParseInfo(info string) (BlockInfo, error) {
	var bi BlockInfo

	s := strings.TrimSpace(info)
	if s == "" {
		return bi, nil
	}

	if !strings.HasPrefix(s, "{") {
		// CommonMark semantics: the first word is the language, the rest
		// of the info string carries no structure.
		bi.Classes = []string{strings.Fields(s)[0]}
		return bi, nil
	}

	if !strings.HasSuffix(s, "}") {
		return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
			"unclosed attribute block: %q", info)
	}

	inner := s[1 : len(s)-1]
	i := 0
	for i < len(inner) {
		if isSpace(inner[i]) {
			i++
			continue
		}

		switch inner[i] {
		case '#':
			token, next := scanToken(inner, i+1)
			if token == "" {
				return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
					"empty identifier in attribute block: %q", info)
			}
			bi.ID = token
			i = next
		case '.':
			token, next := scanToken(inner, i+1)
			if token == "" {
				return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
					"empty class in attribute block: %q", info)
			}
			bi.Classes = append(bi.Classes, token)
			i = next
		case '=':
			return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
				"attribute with empty key in %q", info)
		default:
			token, next := scanToken(inner, i)
			i = next
			key, rest, found := strings.Cut(token, "=")
			if !found {
				// A bare word inside braces counts as a class.
				bi.Classes = append(bi.Classes, token)
				continue
			}
			if key == "" {
				return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
					"attribute with empty key in %q", info)
			}

			value := rest
			if len(rest) > 0 && (rest[0] == '"' || rest[0] == '\'') {
				quote := rest[0]
				// The token scanner stops at whitespace, so a quoted
				// value with spaces continues past it.
				full := rest + readQuotedRemainder(inner, &i, rest, quote)
				if len(full) < 2 || full[len(full)-1] != quote {
					return BlockInfo{}, errors.New(errors.ErrCodeInvalidAttribute,
						"unterminated %c-quoted value for %q in %q", quote, key, info)
				}
				value = full[1 : len(full)-1]
			}
			bi.Attrs = append(bi.Attrs, [2]string{key, value})
		}
	}

	return bi, nil
}

// scanToken reads from position start until whitespace, returning the
// token and the index past it.
func scanToken(s string, start int) (string, int) {
	end := start
	for end < len(s) && !isSpace(s[end]) {
		end++
	}
	return s[start:end], end
}

// isSpace reports ASCII whitespace. Info strings are single-line, and
// splitting on multi-byte whitespace would cut UTF-8 sequences apart.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// readQuotedRemainder extends a quoted value across whitespace until the
// closing quote, advancing the caller's scan position. Returns the extra
// text consumed, or "" when the opening token already closed the quote.
func readQuotedRemainder(s string, pos *int, sofar string, quote byte) string {
	if len(sofar) >= 2 && sofar[len(sofar)-1] == quote {
		return ""
	}
	end := *pos
	for end < len(s) && s[end] != quote {
		end++
	}
	if end >= len(s) {
		// No closing quote; consume the rest so the caller reports it.
		extra := s[*pos:]
		*pos = len(s)
		return extra
	}
	extra := s[*pos : end+1]
	*pos = end + 1
	return extra
}
