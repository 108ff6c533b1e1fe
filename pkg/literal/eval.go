package literal

import (
	"fmt"

	"github.com/arthur-debert/amake/pkg/value"
)

// Eval evaluates src as literal syntax and fails on anything else.
//
//	<expr>  ::= <item> ( "," <item> )* [ "," ]     a comma makes a tuple
//	<item>  ::= [ "+" | "-" ] <atom>             sign applies to numbers only
//	<atom>  ::= <number> | <string>+ | True | False | None
//	          | "[" [ <item> ( "," <item> )* [ "," ] ] "]"
//	          | "(" [ <expr> ] ")"
func Eval(src string) (value.Value, error) {
	p := &parser{input: src}
	v, err := p.parseExpr(0)
	if err != nil {
		return value.None(), err
	}
	p.skipSpace(0)
	if !p.atEnd() {
		return value.None(), p.errorf("unexpected %q", p.input[p.pos:])
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

// node is an evaluated item. Only bare numeric constants may take a sign.
type node struct {
	v        value.Value
	signable bool
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(offset int) byte {
	if p.pos+offset >= len(p.input) {
		return 0
	}
	return p.input[p.pos+offset]
}

// skipSpace skips blanks and comments. Line breaks only count as blanks
// inside brackets, where depth > 0.
func (p *parser) skipSpace(depth int) {
	for !p.atEnd() {
		switch c := p.input[p.pos]; {
		case c == ' ' || c == '\t' || c == '\f':
			p.pos++
		case (c == '\n' || c == '\r') && depth > 0:
			p.pos++
		case c == '\\' && (p.peekAt(1) == '\n' || p.peekAt(1) == '\r'):
			p.pos += 2
		case c == '#':
			for !p.atEnd() && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) parseExpr(depth int) (value.Value, error) {
	first, err := p.parseItem(depth)
	if err != nil {
		return value.None(), err
	}

	p.skipSpace(depth)
	if p.peek() != ',' {
		return first.v, nil
	}

	items := []value.Value{first.v}
	for p.peek() == ',' {
		p.pos++
		p.skipSpace(depth)
		if p.atEnd() || p.peek() == ')' {
			break
		}
		next, err := p.parseItem(depth)
		if err != nil {
			return value.None(), err
		}
		items = append(items, next.v)
		p.skipSpace(depth)
	}
	return value.Tuple(items...), nil
}

func (p *parser) parseItem(depth int) (node, error) {
	p.skipSpace(depth)

	sign := p.peek()
	if sign != '+' && sign != '-' {
		return p.parseAtom(depth)
	}
	p.pos++
	p.skipSpace(depth)

	operand, err := p.parseAtom(depth)
	if err != nil {
		return node{}, err
	}
	if !operand.signable || !operand.v.IsNumber() {
		return node{}, p.errorf("sign applied to a non-numeric literal")
	}

	v := operand.v
	if sign == '+' {
		return node{v: v}, nil
	}

	switch v.Kind() {
	case value.KindInt:
		return node{v: value.Int(-v.IntValue())}, nil
	default:
		return node{v: value.Float(-v.FloatValue())}, nil
	}
}

func (p *parser) parseAtom(depth int) (node, error) {
	if p.atEnd() {
		return node{}, p.errorf("unexpected end of literal")
	}

	c := p.peek()
	switch {
	case c == '[':
		return p.parseList(depth + 1)
	case c == '(':
		return p.parseParens(depth + 1)
	case c == '\'' || c == '"':
		return p.parseStrings(depth)
	case isDigit(c) || (c == '.' && isDigit(p.peekAt(1))):
		v, err := p.parseNumber()
		return node{v: v, signable: true}, err
	case isNameStart(c):
		return p.parseName(depth)
	}
	return node{}, p.errorf("unexpected %q", string(c))
}

func (p *parser) parseList(depth int) (node, error) {
	p.pos++ // [
	var items []value.Value
	for {
		p.skipSpace(depth)
		if p.peek() == ']' {
			p.pos++
			return node{v: value.List(items...)}, nil
		}

		item, err := p.parseItem(depth)
		if err != nil {
			return node{}, err
		}
		items = append(items, item.v)

		p.skipSpace(depth)
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			return node{}, p.errorf("expected ',' or ']'")
		}
	}
}

func (p *parser) parseParens(depth int) (node, error) {
	p.pos++ // (
	p.skipSpace(depth)
	if p.peek() == ')' {
		p.pos++
		return node{v: value.Tuple()}, nil
	}

	first, err := p.parseItem(depth)
	if err != nil {
		return node{}, err
	}
	p.skipSpace(depth)
	if p.peek() == ')' {
		p.pos++
		return first, nil
	}
	if p.peek() != ',' {
		return node{}, p.errorf("expected ',' or ')'")
	}

	items := []value.Value{first.v}
	for p.peek() == ',' {
		p.pos++
		p.skipSpace(depth)
		if p.peek() == ')' {
			break
		}
		next, err := p.parseItem(depth)
		if err != nil {
			return node{}, err
		}
		items = append(items, next.v)
		p.skipSpace(depth)
	}
	if p.peek() != ')' {
		return node{}, p.errorf("expected ')'")
	}
	p.pos++
	return node{v: value.Tuple(items...)}, nil
}

func (p *parser) parseName(depth int) (node, error) {
	start := p.pos
	for !p.atEnd() && isNameChar(p.peek()) {
		p.pos++
	}
	name := p.input[start:p.pos]

	if (p.peek() == '\'' || p.peek() == '"') && isStringPrefix(name) {
		p.pos = start
		return p.parseStrings(depth)
	}

	switch name {
	case "True":
		return node{v: value.Bool(true)}, nil
	case "False":
		return node{v: value.Bool(false)}, nil
	case "None":
		return node{v: value.None()}, nil
	}
	p.pos = start
	return node{}, p.errorf("name %q is not a literal", name)
}

// parseStrings reads one or more adjacent string literals and concatenates them
func (p *parser) parseStrings(depth int) (node, error) {
	var out []byte
	for {
		s, err := p.parseString()
		if err != nil {
			return node{}, err
		}
		out = append(out, s...)

		save := p.pos
		p.skipSpace(depth)
		if !p.startsString() {
			p.pos = save
			return node{v: value.String(string(out))}, nil
		}
	}
}

func (p *parser) startsString() bool {
	c := p.peek()
	if c == '\'' || c == '"' {
		return true
	}
	i := p.pos
	for i < len(p.input) && isNameChar(p.input[i]) {
		i++
	}
	if i == p.pos || i >= len(p.input) {
		return false
	}
	return (p.input[i] == '\'' || p.input[i] == '"') && isStringPrefix(p.input[p.pos:i])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool { return isNameStart(c) || isDigit(c) }
