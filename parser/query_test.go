package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/parser"
)

func mustParseQuery(t *testing.T, src string) *ast.QueryDocument[ast.Borrowed] {
	t.Helper()
	doc, err := parser.ParseQuery[ast.Borrowed](src)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return doc
}

func TestParseQuery_Shorthand(t *testing.T) {
	doc := mustParseQuery(t, "{ hello }")
	ops := doc.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, ast.Query, ops[0].Kind)
	assert.Nil(t, ops[0].Name)
	require.Len(t, ops[0].SelectionSet.Items, 1)

	field, ok := ops[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, "hello", string(field.Name))
	assert.Nil(t, field.Alias)
}

func TestParseQuery_AliasAndArguments(t *testing.T) {
	doc := mustParseQuery(t, `query Greet($name: String = "world") { greeting: hello(name: $name) }`)
	ops := doc.Operations()
	require.Len(t, ops, 1)
	op := ops[0]
	require.NotNil(t, op.Name)
	assert.Equal(t, "Greet", string(*op.Name))
	require.Len(t, op.VariableDefinitions, 1)
	assert.Equal(t, "name", string(op.VariableDefinitions[0].Name))
	assert.Equal(t, "String", op.VariableDefinitions[0].Type.String())

	field := op.SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	require.NotNil(t, field.Alias)
	assert.Equal(t, "greeting", string(*field.Alias))
	assert.Equal(t, "hello", string(field.Name))
	require.Len(t, field.Arguments, 1)
	assert.Equal(t, "name", string(field.Arguments[0].Name))

	v, ok := field.Arguments[0].Value.(ast.VariableValue[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, "name", string(v.Name))
}

func TestParseQuery_FragmentSpreadAndInlineFragment(t *testing.T) {
	doc := mustParseQuery(t, `
		query {
			user {
				...Fields
				... on Admin { rights }
				... { id }
			}
		}
		fragment Fields on User { name }
	`)
	frags := doc.Fragments()
	require.Len(t, frags, 1)
	assert.Equal(t, "Fields", string(frags[0].Name))
	assert.Equal(t, "User", string(frags[0].TypeCondition))

	ops := doc.Operations()
	userField := ops[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	require.Len(t, userField.SelectionSet.Items, 3)

	spread, ok := userField.SelectionSet.Items[0].(*ast.FragmentSpread[ast.Borrowed])
	require.True(t, ok)
	assert.Equal(t, "Fields", string(spread.FragmentName))

	typed, ok := userField.SelectionSet.Items[1].(*ast.InlineFragment[ast.Borrowed])
	require.True(t, ok)
	require.NotNil(t, typed.TypeCondition)
	assert.Equal(t, "Admin", string(*typed.TypeCondition))

	bare, ok := userField.SelectionSet.Items[2].(*ast.InlineFragment[ast.Borrowed])
	require.True(t, ok)
	assert.Nil(t, bare.TypeCondition)
}

func TestParseQuery_FragmentNamedOnIsRejected(t *testing.T) {
	_, err := parser.ParseQuery[ast.Borrowed]("fragment on on User { name }")
	require.NotNil(t, err)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestParseQuery_NonNullCannotStack(t *testing.T) {
	_, err := parser.ParseQuery[ast.Borrowed](`query Q($x: Foo!!) { f }`)
	require.NotNil(t, err)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestParseQuery_EmptySelectionSetIsRejected(t *testing.T) {
	_, err := parser.ParseQuery[ast.Borrowed](`{ }`)
	require.NotNil(t, err)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)

	_, err = parser.ParseQuery[ast.Borrowed](`{ f { } }`)
	require.NotNil(t, err)
	assert.Equal(t, parser.UnexpectedToken, err.Kind)
}

func TestParseQuery_Values(t *testing.T) {
	doc := mustParseQuery(t, `{
		f(i: 1, f: 1.5, s: "str", b: true, n: null, e: RED, l: [1, 2], o: {a: 1})
	}`)
	field := doc.Operations()[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	args := map[string]ast.Value[ast.Borrowed]{}
	for _, a := range field.Arguments {
		args[string(a.Name)] = a.Value
	}

	assert.Equal(t, ast.IntValue{Value: 1}, args["i"])
	assert.Equal(t, ast.FloatValue{Value: 1.5}, args["f"])
	assert.Equal(t, ast.StringValue{Value: "str"}, args["s"])
	assert.Equal(t, ast.BooleanValue{Value: true}, args["b"])
	assert.Equal(t, ast.NullValue{}, args["n"])
	assert.Equal(t, ast.EnumValue[ast.Borrowed]{Value: "RED"}, args["e"])

	list, ok := args["l"].(ast.ListValue[ast.Borrowed])
	require.True(t, ok)
	if diff := cmp.Diff([]ast.Value[ast.Borrowed]{ast.IntValue{Value: 1}, ast.IntValue{Value: 2}}, list.Values); diff != "" {
		t.Errorf("list value mismatch (-want +got):\n%s", diff)
	}

	obj, ok := args["o"].(ast.ObjectValue[ast.Borrowed])
	require.True(t, ok)
	require.Len(t, obj.Fields, 1)
	assert.Equal(t, "a", string(obj.Fields[0].Name))
}

func TestParseQuery_BlockStringUnescapeAndNormalize(t *testing.T) {
	doc := mustParseQuery(t, "{ f(s: \"\"\"\n    hello\n    world\n    \"\"\") }")
	field := doc.Operations()[0].SelectionSet.Items[0].(*ast.Field[ast.Borrowed])
	s := field.Arguments[0].Value.(ast.StringValue)
	assert.True(t, s.Block)
	assert.Equal(t, "hello\nworld", s.Value)
}

func TestParseQuery_InvalidEscape(t *testing.T) {
	_, err := parser.ParseQuery[ast.Borrowed](`{ f(s: "bad \x escape") }`)
	require.NotNil(t, err)
	assert.Equal(t, parser.InvalidEscape, err.Kind)
}

func TestParseQuery_RecursionLimit(t *testing.T) {
	src := ""
	for i := 0; i < 1000; i++ {
		src += "{ a"
	}
	src += " b "
	for i := 0; i < 1000; i++ {
		src += "}"
	}
	_, err := parser.ParseQuery[ast.Borrowed](src)
	require.NotNil(t, err)
	assert.Equal(t, parser.RecursionLimit, err.Kind)
}
