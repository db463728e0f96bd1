package ast

import "github.com/semtexzv/graphql-parser/position"

// TypeSystemDefinition is the sum type of top-level schema definitions:
// SchemaDefinition, SchemaExtension, TypeDefinition, TypeExtension, or
// DirectiveDefinition.
type TypeSystemDefinition[T Text] interface {
	isTypeSystemDefinition()
}

// SchemaDocument is the root of a schema document: a sequence of
// type-system definitions and extensions.
type SchemaDocument[T Text] struct {
	Definitions []TypeSystemDefinition[T]
}

// IntoStatic is the Go no-op analogue of the reference design's owned
// lifetime rebind (see ast.QueryDocument.IntoStatic).
func (d *SchemaDocument[T]) IntoStatic() *SchemaDocument[T] {
	return d
}

// SchemaDefinition declares the root operation types, e.g.
// `schema { query: Query }`.
type SchemaDefinition[T Text] struct {
	Position     position.Pos
	Directives   []Directive[T]
	Query        *T
	Mutation     *T
	Subscription *T
}

func (*SchemaDefinition[T]) isTypeSystemDefinition() {}

// SchemaExtension is `extend schema { ... }`; it carries no description.
type SchemaExtension[T Text] struct {
	Position     position.Pos
	Directives   []Directive[T]
	Query        *T
	Mutation     *T
	Subscription *T
}

func (*SchemaExtension[T]) isTypeSystemDefinition() {}

// TypeDefinition is the sum type of the six kinds of type definition:
// Scalar, Object, Interface, Union, Enum, InputObject.
type TypeDefinition[T Text] interface {
	isTypeSystemDefinition()
	isTypeDefinition()
	TypeName() T
}

// ScalarType is `scalar Name`.
type ScalarType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Directives  []Directive[T]
}

func (*ScalarType[T]) isTypeSystemDefinition() {}
func (*ScalarType[T]) isTypeDefinition()       {}
func (t *ScalarType[T]) TypeName() T           { return t.Name }

// ObjectType is `type Name implements A & B { fields }`.
type ObjectType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Interfaces  []T
	Directives  []Directive[T]
	Fields      []FieldDefinition[T]
}

func (*ObjectType[T]) isTypeSystemDefinition() {}
func (*ObjectType[T]) isTypeDefinition()       {}
func (t *ObjectType[T]) TypeName() T           { return t.Name }

// InterfaceType is `interface Name implements A & B { fields }`.
type InterfaceType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Interfaces  []T
	Directives  []Directive[T]
	Fields      []FieldDefinition[T]
}

func (*InterfaceType[T]) isTypeSystemDefinition() {}
func (*InterfaceType[T]) isTypeDefinition()       {}
func (t *InterfaceType[T]) TypeName() T           { return t.Name }

// UnionType is `union Name = A | B | C`.
type UnionType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Directives  []Directive[T]
	Types       []T
}

func (*UnionType[T]) isTypeSystemDefinition() {}
func (*UnionType[T]) isTypeDefinition()       {}
func (t *UnionType[T]) TypeName() T           { return t.Name }

// EnumType is `enum Name { VALUE ... }`.
type EnumType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Directives  []Directive[T]
	Values      []EnumValueDefinition[T]
}

func (*EnumType[T]) isTypeSystemDefinition() {}
func (*EnumType[T]) isTypeDefinition()       {}
func (t *EnumType[T]) TypeName() T           { return t.Name }

// InputObjectType is `input Name { fields }`.
type InputObjectType[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Directives  []Directive[T]
	Fields      []InputValueDefinition[T]
}

func (*InputObjectType[T]) isTypeSystemDefinition() {}
func (*InputObjectType[T]) isTypeDefinition()       {}
func (t *InputObjectType[T]) TypeName() T           { return t.Name }

// FieldDefinition is one field of an object or interface type.
type FieldDefinition[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Arguments   []InputValueDefinition[T]
	Type        Type[T]
	Directives  []Directive[T]
}

// InputValueDefinition is an argument definition or an input-object
// field definition.
type InputValueDefinition[T Text] struct {
	Position     position.Pos
	Description  *string
	Name         T
	Type         Type[T]
	DefaultValue Value[T] // nil when absent
	Directives   []Directive[T]
}

// EnumValueDefinition is one member of an enum type. Name is never
// true/false/null.
type EnumValueDefinition[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Directives  []Directive[T]
}

// TypeExtension is the sum type of the six `extend <kind>` forms. It
// mirrors TypeDefinition without a Description field.
type TypeExtension[T Text] interface {
	isTypeSystemDefinition()
	isTypeExtension()
	TypeName() T
}

// ScalarTypeExtension is `extend scalar Name @directive`.
type ScalarTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Directives []Directive[T]
}

func (*ScalarTypeExtension[T]) isTypeSystemDefinition() {}
func (*ScalarTypeExtension[T]) isTypeExtension()        {}
func (t *ScalarTypeExtension[T]) TypeName() T           { return t.Name }

// ObjectTypeExtension is `extend type Name ...`.
type ObjectTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Interfaces []T
	Directives []Directive[T]
	Fields     []FieldDefinition[T]
}

func (*ObjectTypeExtension[T]) isTypeSystemDefinition() {}
func (*ObjectTypeExtension[T]) isTypeExtension()        {}
func (t *ObjectTypeExtension[T]) TypeName() T           { return t.Name }

// InterfaceTypeExtension is `extend interface Name ...`.
type InterfaceTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Interfaces []T
	Directives []Directive[T]
	Fields     []FieldDefinition[T]
}

func (*InterfaceTypeExtension[T]) isTypeSystemDefinition() {}
func (*InterfaceTypeExtension[T]) isTypeExtension()        {}
func (t *InterfaceTypeExtension[T]) TypeName() T           { return t.Name }

// UnionTypeExtension is `extend union Name = ...`.
type UnionTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Directives []Directive[T]
	Types      []T
}

func (*UnionTypeExtension[T]) isTypeSystemDefinition() {}
func (*UnionTypeExtension[T]) isTypeExtension()        {}
func (t *UnionTypeExtension[T]) TypeName() T           { return t.Name }

// EnumTypeExtension is `extend enum Name { ... }`.
type EnumTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Directives []Directive[T]
	Values     []EnumValueDefinition[T]
}

func (*EnumTypeExtension[T]) isTypeSystemDefinition() {}
func (*EnumTypeExtension[T]) isTypeExtension()        {}
func (t *EnumTypeExtension[T]) TypeName() T           { return t.Name }

// InputObjectTypeExtension is `extend input Name { ... }`.
type InputObjectTypeExtension[T Text] struct {
	Position   position.Pos
	Name       T
	Directives []Directive[T]
	Fields     []InputValueDefinition[T]
}

func (*InputObjectTypeExtension[T]) isTypeSystemDefinition() {}
func (*InputObjectTypeExtension[T]) isTypeExtension()        {}
func (t *InputObjectTypeExtension[T]) TypeName() T           { return t.Name }

// DirectiveDefinition is `directive @name(args) (repeatable)? on LOC | ...`.
type DirectiveDefinition[T Text] struct {
	Position    position.Pos
	Description *string
	Name        T
	Arguments   []InputValueDefinition[T]
	Repeatable  bool
	Locations   []DirectiveLocation
}

func (*DirectiveDefinition[T]) isTypeSystemDefinition() {}
