package ast

// Type is the sum type of the type grammar: NamedType,
// ListType, NonNullType. A NonNullType never wraps another NonNullType.
type Type[T Text] interface {
	isType()
	String() string
}

// NamedType is a bare type name, e.g. `String` or `User`.
type NamedType[T Text] struct {
	Name T
}

func (NamedType[T]) isType() {}

func (t NamedType[T]) String() string {
	return string(t.Name)
}

// ListType is `[ Type ]`.
type ListType[T Text] struct {
	Of Type[T]
}

func (ListType[T]) isType() {}

func (t ListType[T]) String() string {
	return "[" + t.Of.String() + "]"
}

// NonNullType is `Type !`. Its Of is never itself a NonNullType.
type NonNullType[T Text] struct {
	Of Type[T]
}

func (NonNullType[T]) isType() {}

func (t NonNullType[T]) String() string {
	return t.Of.String() + "!"
}
