package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphql "github.com/semtexzv/graphql-parser"
)

func TestParseQueryAndFormat(t *testing.T) {
	doc, err := graphql.ParseQuery(`{ hello }`)
	require.Nil(t, err)
	require.Len(t, doc.Operations(), 1)

	out, err := graphql.Format(`{ hello }`)
	require.Nil(t, err)
	assert.Contains(t, out, "hello")
}

func TestParseSchemaAndFormatSchema(t *testing.T) {
	doc, err := graphql.ParseSchema(`scalar DateTime`)
	require.Nil(t, err)
	require.Len(t, doc.Definitions, 1)

	out, err := graphql.FormatSchema(`scalar DateTime`)
	require.Nil(t, err)
	assert.Contains(t, out, "scalar DateTime")
}

func TestMinify(t *testing.T) {
	out, err := graphql.Minify(`query Foo { hello }`)
	require.Nil(t, err)
	assert.NotContains(t, out, "Foo")
}
