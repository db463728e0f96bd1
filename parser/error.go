// Package parser implements the shared grammar and the two top-level
// recursive-descent parsers (executable and schema) that turn a token
// stream into an ast.QueryDocument or ast.SchemaDocument.
package parser

import (
	"fmt"

	"github.com/semtexzv/graphql-parser/position"
	"github.com/semtexzv/graphql-parser/token"
)

// ErrorKind distinguishes the failure modes callers need to tell apart.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	UnterminatedString
	InvalidEscape
	InvalidNumber
	InvalidDirectiveLocation
	EmptyExtension
	RecursionLimit
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected-token"
	case UnexpectedEOF:
		return "unexpected-eof"
	case UnterminatedString:
		return "unterminated-string"
	case InvalidEscape:
		return "invalid-escape"
	case InvalidNumber:
		return "invalid-number"
	case InvalidDirectiveLocation:
		return "invalid-directive-location"
	case EmptyExtension:
		return "empty-extension"
	case RecursionLimit:
		return "recursion-limit"
	default:
		return "unknown"
	}
}

// Error is the one error type every parse call can fail with. There is
// no partial result and no error recovery: the first Error encountered
// is the one returned.
type Error struct {
	Pos     position.Pos
	Kind    ErrorKind
	Message string
	// Token is the offending token, when there is one: it is nil for
	// failures inside the lexer and for the end-of-input checks inside
	// lists, argument lists, selection sets and definition blocks.
	Token *token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// fromLexError lifts a token.LexError into the single parser.Error type
// callers see, translating the lexer's own LexKind onto the matching
// ErrorKind.
func fromLexError(le *token.LexError) *Error {
	var kind ErrorKind
	switch le.Kind {
	case token.BadNumber:
		kind = InvalidNumber
	case token.UnterminatedString, token.UnterminatedBlockString:
		kind = UnterminatedString
	default:
		kind = UnexpectedToken
	}
	return &Error{Pos: le.Pos, Kind: kind, Message: le.Message}
}
