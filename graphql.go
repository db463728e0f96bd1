// Package graphql is the public entry point of this module: parsing,
// formatting, and minifying GraphQL executable and schema documents.
// Everything here is a thin wrapper over the ast/token/parser/format/
// minify packages, instantiated at ast.Borrowed — callers who need an
// owned tree (outliving the source buffer) should call the generic
// parser.ParseQuery[ast.Owned]/parser.ParseSchema[ast.Owned] directly.
package graphql

import (
	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/format"
	"github.com/semtexzv/graphql-parser/minify"
	"github.com/semtexzv/graphql-parser/parser"
)

// ParseQuery parses GraphQL executable source into a borrowed
// QueryDocument: every name in the result aliases src; string values
// are unescaped into independent copies.
func ParseQuery(src string) (*ast.QueryDocument[ast.Borrowed], *parser.Error) {
	return parser.ParseQuery[ast.Borrowed](src)
}

// ParseSchema parses GraphQL schema source into a borrowed
// SchemaDocument: every name in the result aliases src; string values
// and descriptions are unescaped into independent copies.
func ParseSchema(src string) (*ast.SchemaDocument[ast.Borrowed], *parser.Error) {
	return parser.ParseSchema[ast.Borrowed](src)
}

// Format parses and re-serializes an executable document in a
// canonical, readable layout.
func Format(src string) (string, *parser.Error) {
	doc, err := ParseQuery(src)
	if err != nil {
		return "", err
	}
	return format.QueryDocument(doc), nil
}

// FormatSchema parses and re-serializes a schema document in a
// canonical, readable layout.
func FormatSchema(src string) (string, *parser.Error) {
	doc, err := ParseSchema(src)
	if err != nil {
		return "", err
	}
	return format.SchemaDocument(doc), nil
}

// Minify parses an executable document and re-serializes it at minimum
// size: unreachable fragments dropped, operation/fragment/variable
// names compacted, whitespace reduced to what token adjacency requires.
func Minify(src string) (string, *parser.Error) {
	return minify.Minify(src)
}
