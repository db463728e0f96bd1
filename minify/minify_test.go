package minify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/minify"
	"github.com/semtexzv/graphql-parser/parser"
)

func TestMinify_DropsUnreachableFragments(t *testing.T) {
	out, err := minify.Minify(`
		query { user { ...Used } }
		fragment Used on User { name }
		fragment Unused on User { age }
	`)
	require.Nil(t, err)
	assert.True(t, strings.Contains(out, "on User"), "expected the reachable fragment to survive: %s", out)
	assert.Equal(t, 1, strings.Count(out, "fragment"), "unreachable fragment should be dropped: %s", out)
}

func TestMinify_RenamesOperationFragmentAndVariableNames(t *testing.T) {
	out, err := minify.Minify(`query Foo($longName: Int) { userName: name(id: $longName) }`)
	require.Nil(t, err)

	reparsed, perr := parser.ParseQuery[ast.Borrowed](out)
	require.Nil(t, perr)

	ops := reparsed.Operations()
	require.Len(t, ops, 1)
	op := ops[0]
	require.NotNil(t, op.Name)
	assert.Len(t, string(*op.Name), 1)
	require.Len(t, op.VariableDefinitions, 1)
	assert.Len(t, string(op.VariableDefinitions[0].Name), 1)

	field := op.SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	require.NotNil(t, field.Alias)
	assert.Equal(t, "userName", string(*field.Alias))
	assert.Equal(t, "name", string(field.Name))
}

func TestMinify_FixedPoint(t *testing.T) {
	src := `query Foo($a: Int, $b: String = "x") {
		user(id: $a) {
			...Parts
			nickname: name
		}
	}
	fragment Parts on User { id }`

	once, err := minify.Minify(src)
	require.Nil(t, err)
	twice, err := minify.Minify(once)
	require.Nil(t, err)
	assert.Equal(t, once, twice)
}

func TestMinify_PreservesStringContentsVerbatim(t *testing.T) {
	out, err := minify.Minify(`{ f(s: "hello \"world\"") }`)
	require.Nil(t, err)

	reparsed, perr := parser.ParseQuery[ast.Borrowed](out)
	require.Nil(t, perr)
	field := reparsed.Operations()[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	s := field.Arguments[0].Value.(ast.StringValue)
	assert.Equal(t, `hello "world"`, s.Value)
}

func TestMinify_PropagatesParseError(t *testing.T) {
	_, err := minify.Minify(`{ f(`)
	require.NotNil(t, err)
}

func TestMinify_PreservesVariablesSharedWithFragments(t *testing.T) {
	out, err := minify.Minify(`
		query Foo($x: Int) { user { ...F } }
		fragment F on User { a(b: $x) }
	`)
	require.Nil(t, err)

	reparsed, perr := parser.ParseQuery[ast.Borrowed](out)
	require.Nil(t, perr)

	op := reparsed.Operations()[0]
	require.Len(t, op.VariableDefinitions, 1)
	declared := string(op.VariableDefinitions[0].Name)

	frags := reparsed.Fragments()
	require.Len(t, frags, 1)
	field := frags[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	ref := field.Arguments[0].Value.(ast.VariableValue[ast.Borrowed])

	assert.Equal(t, declared, string(ref.Name), "variable referenced from a spread fragment must still match its operation's declaration")
}

func TestMinify_IntegerValuedFloatStaysAFloat(t *testing.T) {
	out, err := minify.Minify(`{ f(x: 1.0) }`)
	require.Nil(t, err)

	reparsed, perr := parser.ParseQuery[ast.Borrowed](out)
	require.Nil(t, perr)
	field := reparsed.Operations()[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	_, isFloat := field.Arguments[0].Value.(ast.FloatValue)
	assert.True(t, isFloat, "minified output %q must reparse %v as a FloatValue", out, field.Arguments[0].Value)
}
