package parser

import (
	"fmt"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/position"
	"github.com/semtexzv/graphql-parser/token"
)

// maxDepth bounds recursive-descent nesting (selection sets, values,
// types, fragments) so a deeply nested or adversarial document fails
// cleanly instead of overflowing the goroutine stack.
const maxDepth = 512

// parser is the shared state both the executable and the schema parser
// build on: a token stream and a recursion-depth counter. Productions
// fail by panicking with *Error; the top-level entry points recover it.
type parser[T ast.Text] struct {
	stream *token.Stream
	depth  int
}

func newParser[T ast.Text](toks []token.Token) *parser[T] {
	return &parser[T]{stream: token.NewStream(toks)}
}

func (p *parser[T]) enter() {
	p.depth++
	if p.depth > maxDepth {
		t := p.peek()
		p.fail(RecursionLimit, t.Start, &t, "maximum nesting depth (%d) exceeded", maxDepth)
	}
}

func (p *parser[T]) leave() {
	p.depth--
}

func (p *parser[T]) fail(kind ErrorKind, pos position.Pos, tok *token.Token, format string, args ...any) {
	panic(&Error{Pos: pos, Kind: kind, Message: fmt.Sprintf(format, args...), Token: tok})
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}

func (p *parser[T]) unexpected(t token.Token, expected string) {
	if t.Kind == token.EOF {
		p.fail(UnexpectedEOF, t.Start, &t, "expected %s, found end of input", expected)
	}
	p.fail(UnexpectedToken, t.Start, &t, "expected %s, found %s", expected, describeToken(t))
}

func (p *parser[T]) peek() token.Token    { return p.stream.Peek() }
func (p *parser[T]) advance() token.Token { return p.stream.Advance() }

func (p *parser[T]) atPunct(v string) bool {
	t := p.peek()
	return t.Kind == token.Punctuator && t.Value == v
}

func (p *parser[T]) atKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == token.Name && t.Value == kw
}

// expectPunct consumes the current token if it is the punctuator v,
// otherwise fails with unexpected-token / unexpected-eof.
func (p *parser[T]) expectPunct(v string) token.Token {
	t := p.peek()
	if t.Kind != token.Punctuator || t.Value != v {
		p.unexpected(t, fmt.Sprintf("%q", v))
	}
	return p.advance()
}

// expectKeyword consumes the current token if it is the bare Name kw.
func (p *parser[T]) expectKeyword(kw string) token.Token {
	t := p.peek()
	if t.Kind != token.Name || t.Value != kw {
		p.unexpected(t, fmt.Sprintf("%q", kw))
	}
	return p.advance()
}

// expectName consumes the current token if it is any Name.
func (p *parser[T]) expectName() token.Token {
	t := p.peek()
	if t.Kind != token.Name {
		p.unexpected(t, "Name")
	}
	return p.advance()
}

// run invokes fn, converting any *Error panic into a returned error. Any
// other panic propagates — it represents a bug in the parser, not a
// malformed document.
func run[R any](fn func() R) (result R, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	result = fn()
	return result, nil
}

// ParseQuery parses GraphQL executable source (queries, mutations,
// subscriptions, fragment definitions) into a QueryDocument.
func ParseQuery[T ast.Text](src string) (*ast.QueryDocument[T], *Error) {
	toks, lexErr := token.Lex(src)
	if lexErr != nil {
		return nil, fromLexError(lexErr)
	}
	p := newParser[T](toks)
	doc, err := run(func() *ast.QueryDocument[T] { return p.parseQueryDocument() })
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseSchema parses GraphQL schema source (type system definitions and
// extensions) into a SchemaDocument.
func ParseSchema[T ast.Text](src string) (*ast.SchemaDocument[T], *Error) {
	toks, lexErr := token.Lex(src)
	if lexErr != nil {
		return nil, fromLexError(lexErr)
	}
	p := newParser[T](toks)
	doc, err := run(func() *ast.SchemaDocument[T] { return p.parseSchemaDocument() })
	if err != nil {
		return nil, err
	}
	return doc, nil
}
