// Package pydict decodes the Python-dict-style literals that identity
// provider notifications embed in their free-text bodies. The dialect is a
// JSON superset: single- or double-quoted strings, unquoted True/False/None,
// bare identifier keys and trailing commas. A real parser is used instead of
// quote substitution so apostrophes inside values survive.
package pydict

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLiteral reports an unbalanced or undecodable embedded literal.
var ErrMalformedLiteral = errors.New("malformed literal")

// ExtractLiteral returns the first balanced {...} span in s. Braces inside
// quoted strings do not count toward depth, and quotes escaped with a
// backslash do not toggle string mode.
func ExtractLiteral(s string) (string, error) {
	depth := 0
	start := -1
	inString := false
	var stringChar byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if ch == '\'' || ch == '"' {
			escaped := i > 0 && s[i-1] == '\\'
			if !escaped {
				if !inString {
					inString = true
					stringChar = ch
				} else if ch == stringChar {
					inString = false
				}
			}
			continue
		}

		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	return "", fmt.Errorf("%w: no balanced brace literal", ErrMalformedLiteral)
}

// Parse decodes a literal into map[string]any / []any / string / int64 /
// float64 / bool / nil values. The whole input must be consumed.
func Parse(s string) (any, error) {
	p := &parser{src: s}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrMalformedLiteral, p.pos)
	}
	return v, nil
}

// Unmarshal extracts the balanced literal from s, parses it and decodes the
// result into v through a JSON round trip.
func Unmarshal(s string, v any) error {
	literal, err := ExtractLiteral(s)
	if err != nil {
		return err
	}
	parsed, err := Parse(literal)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}
	return nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) value() (any, error) {
	ch, ok := p.peek()
	if !ok {
		return nil, errors.New("unexpected end of input")
	}
	switch {
	case ch == '{':
		return p.dict()
	case ch == '[', ch == '(':
		return p.list(ch)
	case ch == '\'' || ch == '"':
		return p.str()
	case ch == '-' || ch == '+' || (ch >= '0' && ch <= '9'):
		return p.number()
	case isIdentStart(ch):
		return p.keyword()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", ch, p.pos)
	}
}

func (p *parser) dict() (map[string]any, error) {
	p.pos++ // consume '{'
	out := make(map[string]any)
	for {
		p.skipSpace()
		ch, ok := p.peek()
		if !ok {
			return nil, errors.New("unterminated dict")
		}
		if ch == '}' {
			p.pos++
			return out, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if ch, ok := p.peek(); !ok || ch != ':' {
			return nil, fmt.Errorf("expected ':' after key %q at offset %d", key, p.pos)
		}
		p.pos++
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = val

		p.skipSpace()
		ch, ok = p.peek()
		if !ok {
			return nil, errors.New("unterminated dict")
		}
		switch ch {
		case ',':
			p.pos++
		case '}':
		default:
			return nil, fmt.Errorf("expected ',' or '}' at offset %d", p.pos)
		}
	}
}

func (p *parser) list(open byte) ([]any, error) {
	closer := byte(']')
	if open == '(' {
		closer = ')'
	}
	p.pos++ // consume opener
	out := []any{}
	for {
		p.skipSpace()
		ch, ok := p.peek()
		if !ok {
			return nil, errors.New("unterminated list")
		}
		if ch == closer {
			p.pos++
			return out, nil
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, val)

		p.skipSpace()
		ch, ok = p.peek()
		if !ok {
			return nil, errors.New("unterminated list")
		}
		switch ch {
		case ',':
			p.pos++
		case closer:
		default:
			return nil, fmt.Errorf("expected ',' or %q at offset %d", closer, p.pos)
		}
	}
}

// key accepts a quoted string or a bare identifier.
func (p *parser) key() (string, error) {
	ch, ok := p.peek()
	if !ok {
		return "", errors.New("unexpected end of input in dict key")
	}
	if ch == '\'' || ch == '"' {
		return p.str()
	}
	if !isIdentStart(ch) {
		return "", fmt.Errorf("invalid dict key at offset %d", p.pos)
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) str() (string, error) {
	quote := p.src[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch ch {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", errors.New("unterminated escape sequence")
			}
			esc := p.src[p.pos]
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				if p.pos+4 >= len(p.src) {
					return "", errors.New("truncated \\u escape")
				}
				code, err := strconv.ParseUint(p.src[p.pos+1:p.pos+5], 16, 32)
				if err != nil {
					return "", fmt.Errorf("invalid \\u escape at offset %d", p.pos)
				}
				b.WriteRune(rune(code))
				p.pos += 4
			default:
				// Unknown escapes keep the escaped character (\' -> ').
				b.WriteByte(esc)
			}
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
	return "", errors.New("unterminated string")
}

func (p *parser) number() (any, error) {
	start := p.pos
	if ch, _ := p.peek(); ch == '-' || ch == '+' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		if ch == '.' || ch == 'e' || ch == 'E' {
			isFloat = true
			p.pos++
			continue
		}
		if (ch == '-' || ch == '+') && isFloat && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E') {
			p.pos++
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q at offset %d", text, start)
	}
	return f, nil
}

// keyword consumes a bare identifier; only the boolean/null spellings of
// both dialects are valid values.
func (p *parser) keyword() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	switch p.src[start:p.pos] {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	case "None", "null":
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected identifier %q at offset %d", p.src[start:p.pos], start)
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
