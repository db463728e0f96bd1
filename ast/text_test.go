package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semtexzv/graphql-parser/ast"
)

func TestNewText_Borrowed(t *testing.T) {
	src := "hello world"
	name := ast.NewText[ast.Borrowed](src[6:])
	assert.Equal(t, "world", ast.AsString(name))
}

func TestNewText_Owned(t *testing.T) {
	src := []byte("hello world")
	sub := string(src[6:])
	name := ast.NewText[ast.Owned](sub)
	src[6] = 'W' // mutate the original backing array
	assert.Equal(t, "world", ast.AsString(name), "Owned text must not alias the source buffer")
}
