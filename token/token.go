// Package token implements the hand-written GraphQL tokenizer and the
// checkpoint/restore token stream the parser walks.
package token

import (
	"fmt"

	"github.com/semtexzv/graphql-parser/position"
)

// Kind classifies a Token.
type Kind int

const (
	// EOF is the end-of-input sentinel; every token stream ends with
	// exactly one.
	EOF Kind = iota
	Punctuator
	Name
	IntValue
	FloatValue
	StringValue
	BlockString
	// Description is never produced by the lexer itself — the schema
	// grammar reclassifies a StringValue/BlockString token as a
	// description when it immediately precedes a definition-introducing
	// token. It exists here only so callers can name the
	// concept; Token.Kind is always one of the kinds above it.
	Description
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Punctuator:
		return "Punctuator"
	case Name:
		return "Name"
	case IntValue:
		return "IntValue"
	case FloatValue:
		return "FloatValue"
	case StringValue:
		return "StringValue"
	case BlockString:
		return "BlockString"
	case Description:
		return "Description"
	default:
		return "Unknown"
	}
}

// Token is a classified lexeme: its kind, its raw source slice, and its
// start/end positions. String and block-string values carry their
// delimiters in Value so the grammar can tell them apart without
// re-inspecting the source; unescaping happens later, in the
// grammar, not here.
type Token struct {
	Kind  Kind
	Value string
	Start position.Pos
	End   position.Pos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF@%s", t.Start)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Start)
}
