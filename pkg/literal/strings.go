package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// isStringPrefix accepts the prefixes that still produce a str. Bytes and
// f-strings are not literals here.
func isStringPrefix(prefix string) bool {
	switch strings.ToLower(prefix) {
	case "r", "u":
		return true
	}
	return false
}

// parseString reads a single, possibly prefixed, string literal and returns its decoded text
func (p *parser) parseString() ([]byte, error) {
	raw := false
	if c := p.peek(); c != '\'' && c != '"' {
		raw = p.peek() == 'r' || p.peek() == 'R'
		p.pos++
	}

	q := p.peek()
	triple := p.peekAt(1) == q && p.peekAt(2) == q
	if triple {
		p.pos += 3
	} else {
		p.pos++
	}

	var out []byte
	for {
		if p.atEnd() {
			return nil, p.errorf("unterminated string literal")
		}
		c := p.input[p.pos]

		if c == q {
			if !triple {
				p.pos++
				return out, nil
			}
			if p.peekAt(1) == q && p.peekAt(2) == q {
				p.pos += 3
				return out, nil
			}
		}

		if (c == '\n' || c == '\r') && !triple {
			return nil, p.errorf("line break in string literal")
		}

		if c != '\\' {
			out = append(out, c)
			p.pos++
			continue
		}

		if p.pos+1 >= len(p.input) {
			return nil, p.errorf("unterminated string literal")
		}
		if raw {
			out = append(out, c, p.input[p.pos+1])
			p.pos += 2
			continue
		}

		decoded, err := p.parseEscape()
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
	}
}

// parseEscape decodes the escape sequence at p.pos, which points at the backslash
func (p *parser) parseEscape() ([]byte, error) {
	p.pos++
	c := p.input[p.pos]
	p.pos++

	switch c {
	case '\n':
		return nil, nil
	case '\r':
		if p.peek() == '\n' {
			p.pos++
		}
		return nil, nil
	case '\\', '\'', '"':
		return []byte{c}, nil
	case 'a':
		return []byte{'\a'}, nil
	case 'b':
		return []byte{'\b'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'v':
		return []byte{'\v'}, nil
	case 'x':
		return p.parseHexEscape(2)
	case 'u':
		return p.parseHexEscape(4)
	case 'U':
		return p.parseHexEscape(8)
	case 'N':
		return nil, p.errorf("named unicode escapes are not supported")
	}

	if c >= '0' && c <= '7' {
		start := p.pos - 1
		for p.pos < len(p.input) && p.pos-start < 3 && p.input[p.pos] >= '0' && p.input[p.pos] <= '7' {
			p.pos++
		}
		n, _ := strconv.ParseUint(p.input[start:p.pos], 8, 32)
		return utf8.AppendRune(nil, rune(n)), nil
	}

	// Unknown escapes keep the backslash
	return []byte{'\\', c}, nil
}

func (p *parser) parseHexEscape(width int) ([]byte, error) {
	if p.pos+width > len(p.input) {
		return nil, p.errorf("truncated \\x escape")
	}
	digits := p.input[p.pos : p.pos+width]
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, p.errorf("invalid escape digits %q", digits)
	}
	if n > utf8.MaxRune {
		return nil, p.errorf("escape out of range")
	}
	p.pos += width
	return utf8.AppendRune(nil, rune(n)), nil
}
