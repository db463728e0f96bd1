package ast

import "github.com/semtexzv/graphql-parser/position"

// OperationKind distinguishes the three executable operation types.
type OperationKind int

const (
	Query OperationKind = iota
	Mutation
	Subscription
)

func (k OperationKind) String() string {
	switch k {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// Definition is the sum type of top-level executable definitions:
// OperationDefinition or FragmentDefinition.
type Definition[T Text] interface {
	isDefinition()
}

// QueryDocument is the root of an executable document: a sequence of
// operation and fragment definitions.
type QueryDocument[T Text] struct {
	Definitions []Definition[T]
}

// Operations returns the document's operation definitions, in order.
func (d *QueryDocument[T]) Operations() []*OperationDefinition[T] {
	var out []*OperationDefinition[T]
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition[T]); ok {
			out = append(out, op)
		}
	}
	return out
}

// Fragments returns the document's named fragment definitions, in order.
func (d *QueryDocument[T]) Fragments() []*FragmentDefinition[T] {
	var out []*FragmentDefinition[T]
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition[T]); ok {
			out = append(out, frag)
		}
	}
	return out
}

// IntoStatic rebinds an owned document's (phantom, in Go nonexistent)
// source lifetime to the longest one. Go has no borrow checker, so this
// is a pure no-op accessor kept only so a caller coming from the
// the original design has somewhere to call it; it is only
// meaningful to call when T = Owned, since that is the only
// instantiation with no remaining reference into the source.
func (d *QueryDocument[T]) IntoStatic() *QueryDocument[T] {
	return d
}

// OperationDefinition is a query, mutation, or subscription. A
// "shorthand" query (bare `{ ... }`) is represented with Kind = Query,
// Name = nil, and empty VariableDefinitions/Directives.
type OperationDefinition[T Text] struct {
	Position            position.Pos
	Kind                OperationKind
	Name                *T
	VariableDefinitions []VariableDefinition[T]
	Directives          []Directive[T]
	SelectionSet        SelectionSet[T]
}

func (*OperationDefinition[T]) isDefinition() {}

// VariableDefinition is one `$name: Type = default` entry in an
// operation's variable list.
type VariableDefinition[T Text] struct {
	Position     position.Pos
	Name         T
	Type         Type[T]
	DefaultValue Value[T] // nil when absent
	Directives   []Directive[T]
}

// FragmentDefinition is a named `fragment Name on Type { ... }`
// definition. Name is never "on".
type FragmentDefinition[T Text] struct {
	Position      position.Pos
	Name          T
	TypeCondition T
	Directives    []Directive[T]
	SelectionSet  SelectionSet[T]
}

func (*FragmentDefinition[T]) isDefinition() {}

// SelectionSet is a brace-delimited list of selections. Start is the
// source position of the opening brace; End is the position just past
// the closing brace.
type SelectionSet[T Text] struct {
	Start, End position.Pos
	Items      []Selection[T]
}

// Selection is the sum type of what may appear inside a SelectionSet:
// Field, FragmentSpread, or InlineFragment.
type Selection[T Text] interface {
	isSelection()
}

// Field is a single field selection, with optional alias, arguments,
// directives, and nested selection set.
type Field[T Text] struct {
	Position     position.Pos
	Alias        *T
	Name         T
	Arguments    []Argument[T]
	Directives   []Directive[T]
	SelectionSet *SelectionSet[T] // nil for a leaf field
}

func (*Field[T]) isSelection() {}

// ResponseKey is the alias if present, else the field name — the key
// this field's result will appear under.
func (f *Field[T]) ResponseKey() T {
	if f.Alias != nil {
		return *f.Alias
	}
	return f.Name
}

// FragmentSpread is a `...Name` reference to a named fragment.
// FragmentName is never "on".
type FragmentSpread[T Text] struct {
	Position     position.Pos
	FragmentName T
	Directives   []Directive[T]
}

func (*FragmentSpread[T]) isSelection() {}

// InlineFragment is a `... on Type { ... }` (or bare `... { ... }`)
// anonymous fragment at the use site.
type InlineFragment[T Text] struct {
	Position      position.Pos
	TypeCondition *T // nil when no `on Type` clause is present
	Directives    []Directive[T]
	SelectionSet  SelectionSet[T]
}

func (*InlineFragment[T]) isSelection() {}
