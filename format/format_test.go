package format_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/format"
	"github.com/semtexzv/graphql-parser/parser"
)

func TestFormatQueryDocument_Idempotent(t *testing.T) {
	srcs := []string{
		`{ hello }`,
		`query Greet($name: String = "world") { greeting: hello(name: $name) @include(if: true) }`,
		`query { user { ...Fields ... on Admin { rights } } } fragment Fields on User { name }`,
	}

	for _, src := range srcs {
		doc, err := parser.ParseQuery[ast.Borrowed](src)
		require.Nil(t, err)
		out := format.QueryDocument(doc)

		reparsed, err := parser.ParseQuery[ast.Borrowed](out)
		require.Nil(t, err, "formatted output failed to reparse: %s", out)

		out2 := format.QueryDocument(reparsed)
		if diff := cmp.Diff(out, out2); diff != "" {
			t.Errorf("format is not idempotent (-first +second):\n%s", diff)
		}
	}
}

func TestFormatQueryDocument_IntegerValuedFloatStaysAFloat(t *testing.T) {
	doc, err := parser.ParseQuery[ast.Borrowed](`{ f(x: 1.0) }`)
	require.Nil(t, err)
	out := format.QueryDocument(doc)

	reparsed, err := parser.ParseQuery[ast.Borrowed](out)
	require.Nil(t, err)
	field := reparsed.Operations()[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	_, isFloat := field.Arguments[0].Value.(ast.FloatValue)
	require.True(t, isFloat, "formatted output %q must reparse %v as a FloatValue", out, field.Arguments[0].Value)
}

func TestFormatSchemaDocument_Idempotent(t *testing.T) {
	src := `
		"""A user."""
		type User implements Node {
			id: ID!
			name: String
		}
		enum Role { ADMIN USER }
		directive @auth on FIELD_DEFINITION
	`
	doc, err := parser.ParseSchema[ast.Borrowed](src)
	require.Nil(t, err)
	out := format.SchemaDocument(doc)

	reparsed, err := parser.ParseSchema[ast.Borrowed](out)
	require.Nil(t, err, "formatted output failed to reparse: %s", out)

	out2 := format.SchemaDocument(reparsed)
	if diff := cmp.Diff(out, out2); diff != "" {
		t.Errorf("format is not idempotent (-first +second):\n%s", diff)
	}
}
