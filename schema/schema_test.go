package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/parser"
	"github.com/semtexzv/graphql-parser/schema"
)

func TestCollect(t *testing.T) {
	doc, err := parser.ParseSchema[ast.Borrowed](`
		schema { query: Query }
		type Query { user: User }
		type User { id: ID! name: String }
		scalar DateTime
	`)
	require.Nil(t, err)

	sum := schema.Collect(doc)
	assert.Equal(t, "Query", sum.Query)

	userType, ok := sum.GetType("User")
	require.True(t, ok)
	assert.Equal(t, "OBJECT", userType.Kind)
	assert.Equal(t, 2, userType.FieldCount)

	_, ok = sum.GetType("DateTime")
	require.True(t, ok)
}

func TestCollect_InfersQueryWhenSchemaDefinitionAbsent(t *testing.T) {
	doc, err := parser.ParseSchema[ast.Borrowed](`type Query { ping: Boolean }`)
	require.Nil(t, err)

	sum := schema.Collect(doc)
	assert.Equal(t, "Query", sum.Query)
}
