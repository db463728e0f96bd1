package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/parser"
)

func mustParseSchema(t *testing.T, src string) *ast.SchemaDocument[ast.Borrowed] {
	t.Helper()
	doc, err := parser.ParseSchema[ast.Borrowed](src)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return doc
}

func TestParseSchema_ObjectTypeWithDescription(t *testing.T) {
	doc := mustParseSchema(t, `
		"""A user of the system."""
		type User implements Node & Named {
			id: ID!
			"the display name"
			name: String
		}
	`)
	require.Len(t, doc.Definitions, 1)
	obj, ok := doc.Definitions[0].(*ast.ObjectType[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, "User", string(obj.Name))
	require.NotNil(t, obj.Description)
	assert.Equal(t, "A user of the system.", *obj.Description)
	assert.Equal(t, []ast.Borrowed{"Node", "Named"}, obj.Interfaces)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "id", string(obj.Fields[0].Name))
	assert.Equal(t, "ID!", obj.Fields[0].Type.String())
	require.NotNil(t, obj.Fields[1].Description)
	assert.Equal(t, "the display name", *obj.Fields[1].Description)
}

func TestParseSchema_SchemaDefinitionAndDirective(t *testing.T) {
	doc := mustParseSchema(t, `
		schema { query: Query, mutation: Mutation }
		directive @auth(role: String!) on FIELD_DEFINITION | OBJECT
	`)
	require.Len(t, doc.Definitions, 2)

	def, ok := doc.Definitions[0].(*ast.SchemaDefinition[ast.Borrowed])
	require.True(t, ok)
	require.NotNil(t, def.Query)
	assert.Equal(t, "Query", string(*def.Query))
	require.NotNil(t, def.Mutation)
	assert.Equal(t, "Mutation", string(*def.Mutation))

	dir, ok := doc.Definitions[1].(*ast.DirectiveDefinition[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, "auth", string(dir.Name))
	require.Len(t, dir.Locations, 2)
	assert.Equal(t, ast.LocationFieldDefinition, dir.Locations[0])
	assert.Equal(t, ast.LocationObject, dir.Locations[1])
}

func TestParseSchema_UnionAndEnum(t *testing.T) {
	doc := mustParseSchema(t, `
		union SearchResult = Human | Droid
		enum Episode { NEWHOPE EMPIRE JEDI }
	`)
	union, ok := doc.Definitions[0].(*ast.UnionType[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, []ast.Borrowed{"Human", "Droid"}, union.Types)

	enum, ok := doc.Definitions[1].(*ast.EnumType[ast.Borrowed])
	require.True(t, ok)
	require.Len(t, enum.Values, 3)
	assert.Equal(t, "NEWHOPE", string(enum.Values[0].Name))
}

func TestParseSchema_Extensions(t *testing.T) {
	doc := mustParseSchema(t, `
		extend type User { email: String }
		extend scalar DateTime @deprecated
	`)
	ext, ok := doc.Definitions[0].(*ast.ObjectTypeExtension[ast.Borrowed])
	require.True(t, ok)
	require.Len(t, ext.Fields, 1)
	assert.Equal(t, "email", string(ext.Fields[0].Name))

	scalarExt, ok := doc.Definitions[1].(*ast.ScalarTypeExtension[ast.Borrowed])
	require.True(t, ok)
	require.Len(t, scalarExt.Directives, 1)
}

func TestParseSchema_EmptyExtensionRejected(t *testing.T) {
	_, err := parser.ParseSchema[ast.Borrowed](`extend type User`)
	require.NotNil(t, err)
	assert.Equal(t, parser.EmptyExtension, err.Kind)
}

func TestParseSchema_EmptyBlocksRejected(t *testing.T) {
	cases := []string{
		`type T { }`,
		`enum E { }`,
		`input I { }`,
		`type T { f() : Int }`,
	}
	for _, src := range cases {
		_, err := parser.ParseSchema[ast.Borrowed](src)
		require.NotNil(t, err, "expected %q to be rejected", src)
		assert.Equal(t, parser.UnexpectedToken, err.Kind, "for %q", src)
	}
}

func TestParseSchema_InvalidDirectiveLocation(t *testing.T) {
	_, err := parser.ParseSchema[ast.Borrowed](`directive @x on BOGUS_LOCATION`)
	require.NotNil(t, err)
	assert.Equal(t, parser.InvalidDirectiveLocation, err.Kind)
}

func TestParseSchema_LeadingPipeAndAmpersand(t *testing.T) {
	doc := mustParseSchema(t, `
		type T implements & A & B { f: Int }
		union U = | A | B
	`)
	obj := doc.Definitions[0].(*ast.ObjectType[ast.Borrowed])
	assert.Equal(t, []ast.Borrowed{"A", "B"}, obj.Interfaces)
	union := doc.Definitions[1].(*ast.UnionType[ast.Borrowed])
	assert.Equal(t, []ast.Borrowed{"A", "B"}, union.Types)
}
