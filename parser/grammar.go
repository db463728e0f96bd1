package parser

import (
	"strconv"
	"strings"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/position"
	"github.com/semtexzv/graphql-parser/token"
)

// name parses a bare Name token into T.
func (p *parser[T]) name() T {
	t := p.expectName()
	return ast.NewText[T](t.Value)
}

// unescapeString processes a StringValue token's escapes into an owned
// Go string. The lexer only finds the string's end; invalid-escape is a
// grammar-layer failure, not a lex-layer one. Block strings never reach
// here — \"""-escaping is handled in blockStringValue, and nothing else
// inside a block string is an escape.
func (p *parser[T]) unescapeString(t token.Token) string {
	raw := t.Value
	content := raw[1 : len(raw)-1]
	runes := []rune(content)

	var b strings.Builder
	col := t.Start.Column + 1
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			col++
			continue
		}

		pos := position.Pos{Line: t.Start.Line, Column: col}
		if i+1 >= len(runes) {
			p.fail(InvalidEscape, pos, &t, "invalid escape at end of string")
		}
		esc := runes[i+1]
		switch esc {
		case '"':
			b.WriteRune('"')
		case '\\':
			b.WriteRune('\\')
		case '/':
			b.WriteRune('/')
		case 'b':
			b.WriteRune('\b')
		case 'f':
			b.WriteRune('\f')
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		case 'u':
			if i+5 >= len(runes) {
				p.fail(InvalidEscape, pos, &t, "invalid unicode escape: expected 4 hex digits")
			}
			hex := string(runes[i+2 : i+6])
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				p.fail(InvalidEscape, pos, &t, "invalid unicode escape %q", hex)
			}
			b.WriteRune(rune(v))
			i += 4
			col += 4
		default:
			p.fail(InvalidEscape, pos, &t, "invalid escape character %q", esc)
		}
		i++
		col += 2
	}
	return b.String()
}

// blockStringValue processes a BlockString token: strip the `"""`
// delimiters, replace the escaped delimiter `\"""` with `"""`, then
// apply the standard GraphQL block-string normalization (common-indent
// removal, leading/trailing blank line trim, line terminators unified to
// `\n`).
func (p *parser[T]) blockStringValue(t token.Token) string {
	raw := t.Value
	content := raw[3 : len(raw)-3]
	content = strings.ReplaceAll(content, `\"""`, `"""`)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue // all-whitespace lines don't constrain the common indent
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func isBlank(s string) bool {
	return leadingWhitespace(s) == len(s)
}

// stringOrBlockValue consumes the current StringValue/BlockString token
// and returns its processed contents as an ast.StringValue.
func (p *parser[T]) stringOrBlockValue() ast.StringValue {
	t := p.peek()
	switch t.Kind {
	case token.BlockString:
		p.advance()
		return ast.StringValue{Value: p.blockStringValue(t), Block: true}
	case token.StringValue:
		p.advance()
		return ast.StringValue{Value: p.unescapeString(t), Block: false}
	default:
		p.unexpected(t, "String")
		panic("unreachable")
	}
}

// description reclassifies a String/BlockString token immediately
// preceding a type system definition, field definition, input value
// definition, or enum value definition as its description. Every position that calls description() is one
// where a bare string can only mean a description — extensions never
// carry one, so callers parsing an `extend ...` form never call this.
func (p *parser[T]) description() *string {
	t := p.peek()
	if t.Kind != token.StringValue && t.Kind != token.BlockString {
		return nil
	}
	sv := p.stringOrBlockValue()
	return &sv.Value
}

// typeRef parses the Type grammar: NamedType, ListType, and a trailing
// `!` wrapping either in NonNullType. Non-null never stacks: a second
// `!` immediately after the first is rejected explicitly with an
// unexpected-token error at the second `!`.
func (p *parser[T]) typeRef() ast.Type[T] {
	p.enter()
	defer p.leave()

	var base ast.Type[T]
	if p.atPunct("[") {
		p.advance()
		inner := p.typeRef()
		p.expectPunct("]")
		base = ast.ListType[T]{Of: inner}
	} else {
		base = ast.NamedType[T]{Name: p.name()}
	}

	if p.atPunct("!") {
		p.advance()
		base = ast.NonNullType[T]{Of: base}
		if p.atPunct("!") {
			t := p.peek()
			p.fail(UnexpectedToken, t.Start, &t, "non-null type cannot be wrapped in another non-null")
		}
	}
	return base
}

// value parses the Value grammar. constMode disallows
// `$variable` references — used for default values and directive
// definition arguments.
func (p *parser[T]) value(constMode bool) ast.Value[T] {
	p.enter()
	defer p.leave()

	t := p.peek()
	switch {
	case t.Kind == token.Punctuator && t.Value == "$":
		if constMode {
			p.fail(UnexpectedToken, t.Start, &t, "variables are not allowed in a const context")
		}
		p.advance()
		name := p.name()
		return ast.VariableValue[T]{Name: name}

	case t.Kind == token.IntValue:
		p.advance()
		n, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			p.fail(InvalidNumber, t.Start, &t, "integer literal out of range: %s", t.Value)
		}
		return ast.IntValue{Value: n}

	case t.Kind == token.FloatValue:
		p.advance()
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			p.fail(InvalidNumber, t.Start, &t, "float literal out of range: %s", t.Value)
		}
		return ast.FloatValue{Value: f}

	case t.Kind == token.StringValue || t.Kind == token.BlockString:
		return p.stringOrBlockValue()

	case t.Kind == token.Name:
		switch t.Value {
		case "true":
			p.advance()
			return ast.BooleanValue{Value: true}
		case "false":
			p.advance()
			return ast.BooleanValue{Value: false}
		case "null":
			p.advance()
			return ast.NullValue{}
		case "on":
			p.fail(UnexpectedToken, t.Start, &t, `"on" cannot be used as a value`)
		}
		p.advance()
		return ast.EnumValue[T]{Value: ast.NewText[T](t.Value)}

	case t.Kind == token.Punctuator && t.Value == "[":
		p.advance()
		var items []ast.Value[T]
		for !p.atPunct("]") {
			if p.peek().Kind == token.EOF {
				p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated list value")
			}
			items = append(items, p.value(constMode))
		}
		p.advance()
		return ast.ListValue[T]{Values: items}

	case t.Kind == token.Punctuator && t.Value == "{":
		p.advance()
		var fields []ast.ObjectField[T]
		for !p.atPunct("}") {
			if p.peek().Kind == token.EOF {
				p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated object value")
			}
			fname := p.name()
			p.expectPunct(":")
			fields = append(fields, ast.ObjectField[T]{Name: fname, Value: p.value(constMode)})
		}
		p.advance()
		return ast.ObjectValue[T]{Fields: fields}
	}

	p.unexpected(t, "Value")
	panic("unreachable")
}

// arguments parses an optional parenthesized `(name: value, ...)` list.
func (p *parser[T]) arguments(constMode bool) []ast.Argument[T] {
	if !p.atPunct("(") {
		return nil
	}
	p.advance()
	var args []ast.Argument[T]
	for !p.atPunct(")") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated argument list")
		}
		name := p.name()
		p.expectPunct(":")
		args = append(args, ast.Argument[T]{Name: name, Value: p.value(constMode)})
	}
	p.advance()
	return args
}

// directive parses a single `@name(args)`.
func (p *parser[T]) directive(constMode bool) ast.Directive[T] {
	at := p.expectPunct("@")
	name := p.name()
	return ast.Directive[T]{Position: at.Start, Name: name, Arguments: p.arguments(constMode)}
}

// directives parses zero or more consecutive directives.
func (p *parser[T]) directives(constMode bool) []ast.Directive[T] {
	var out []ast.Directive[T]
	for p.atPunct("@") {
		out = append(out, p.directive(constMode))
	}
	return out
}
