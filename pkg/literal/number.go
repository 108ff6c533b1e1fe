package literal

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/amake/pkg/value"
)

// parseNumber reads an integer or float literal, including 0x/0o/0b forms
// and underscores between digits. Imaginary numbers are rejected.
func (p *parser) parseNumber() (value.Value, error) {
	start := p.pos

	if p.peek() == '0' {
		if base := radix(p.peekAt(1)); base != 0 {
			p.pos += 2
			accept := func(c byte) bool { return digitValue(c) < base }
			if p.peek() == '_' && accept(p.peekAt(1)) {
				p.pos++
			}
			digits, ok := p.scanDigits(accept)
			if !ok || digits == "" {
				return value.None(), p.errorf("invalid integer literal %q", p.input[start:p.pos])
			}
			if err := p.checkNumberEnd(); err != nil {
				return value.None(), err
			}
			n, err := strconv.ParseInt(digits, base, 64)
			if err != nil {
				return value.None(), p.errorf("integer literal %q out of range", p.input[start:p.pos])
			}
			return value.Int(n), nil
		}
	}

	intPart, ok := p.scanDigits(isDigit)
	if !ok {
		return value.None(), p.errorf("invalid decimal literal")
	}

	isFloat := false
	text := intPart
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		frac, ok := p.scanDigits(isDigit)
		if !ok {
			return value.None(), p.errorf("invalid decimal literal")
		}
		text += "." + frac
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		save := p.pos
		p.pos++
		sign := ""
		if c := p.peek(); c == '+' || c == '-' {
			sign = string(c)
			p.pos++
		}
		exp, ok := p.scanDigits(isDigit)
		if !ok || exp == "" {
			p.pos = save
			return value.None(), p.errorf("invalid exponent")
		}
		isFloat = true
		text += "e" + sign + exp
	}

	if c := p.peek(); c == 'j' || c == 'J' {
		return value.None(), p.errorf("complex literals are not supported")
	}
	if err := p.checkNumberEnd(); err != nil {
		return value.None(), err
	}

	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !isRangeError(err) {
			return value.None(), p.errorf("invalid float literal %q", text)
		}
		return value.Float(f), nil
	}

	if len(intPart) > 1 && intPart[0] == '0' && strings.Trim(intPart, "0") != "" {
		return value.None(), p.errorf("leading zeros in decimal integer literals are not permitted")
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return value.None(), p.errorf("integer literal %q out of range", intPart)
	}
	return value.Int(n), nil
}

// scanDigits reads digits accepted by ok, allowing single underscores
// between digits, and returns them with the underscores removed
func (p *parser) scanDigits(accept func(byte) bool) (string, bool) {
	var b strings.Builder
	for !p.atEnd() {
		c := p.peek()
		if accept(c) {
			b.WriteByte(c)
			p.pos++
			continue
		}
		if c == '_' {
			if b.Len() == 0 || !accept(p.peekAt(1)) {
				return "", false
			}
			p.pos++
			continue
		}
		break
	}
	return b.String(), true
}

func (p *parser) checkNumberEnd() error {
	if c := p.peek(); isNameChar(c) || c == '.' {
		return p.errorf("invalid character %q in numeric literal", string(c))
	}
	return nil
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
