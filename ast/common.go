package ast

import "github.com/semtexzv/graphql-parser/position"

// Argument is one `name: value` pair, shared by field arguments and
// directive arguments. Order is syntactic and preserved.
type Argument[T Text] struct {
	Name  T
	Value Value[T]
}

// Directive is an `@name(args)` annotation attached to a grammar
// construct. Argument order is syntactic.
type Directive[T Text] struct {
	Position  position.Pos
	Name      T
	Arguments []Argument[T]
}
