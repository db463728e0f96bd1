// Package schema builds a lightweight, queryable summary of a parsed
// ast.SchemaDocument: root operation names and a by-name index of type
// definitions with their kind and field count. The gqlc CLI builds one
// for each schema file it parses and reports its number of types.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/semtexzv/graphql-parser/ast"
)

// TypeDefinition is a flattened, kind-tagged view of one of the six
// ast.TypeDefinition variants, convenient for reporting and lookup.
type TypeDefinition struct {
	Name        string
	Kind        string // OBJECT, INTERFACE, UNION, ENUM, SCALAR, INPUT_OBJECT
	Description string
	FieldCount  int
}

// Schema summarizes a schema document's root operation types and named
// type definitions.
type Schema struct {
	Types        map[string]TypeDefinition
	Query        string
	Mutation     string
	Subscription string
}

// Collect walks a parsed schema document and builds its Schema summary.
// Extensions are not merged into the base definitions — this is a
// reporting view of the document as written, not a materialized schema.
func Collect[T ast.Text](doc *ast.SchemaDocument[T]) *Schema {
	s := &Schema{Types: map[string]TypeDefinition{}}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.SchemaDefinition[T]:
			if d.Query != nil {
				s.Query = string(*d.Query)
			}
			if d.Mutation != nil {
				s.Mutation = string(*d.Mutation)
			}
			if d.Subscription != nil {
				s.Subscription = string(*d.Subscription)
			}
		case ast.TypeDefinition[T]:
			s.Types[string(d.TypeName())] = describeType(d)
		}
	}

	if s.Query == "" {
		if _, ok := s.Types["Query"]; ok {
			s.Query = "Query"
		}
	}

	return s
}

func describeType[T ast.Text](d ast.TypeDefinition[T]) TypeDefinition {
	td := TypeDefinition{Name: string(d.TypeName())}
	switch t := d.(type) {
	case *ast.ScalarType[T]:
		td.Kind = "SCALAR"
		td.Description = describeOr(t.Description)
	case *ast.ObjectType[T]:
		td.Kind = "OBJECT"
		td.Description = describeOr(t.Description)
		td.FieldCount = len(t.Fields)
	case *ast.InterfaceType[T]:
		td.Kind = "INTERFACE"
		td.Description = describeOr(t.Description)
		td.FieldCount = len(t.Fields)
	case *ast.UnionType[T]:
		td.Kind = "UNION"
		td.Description = describeOr(t.Description)
	case *ast.EnumType[T]:
		td.Kind = "ENUM"
		td.Description = describeOr(t.Description)
	case *ast.InputObjectType[T]:
		td.Kind = "INPUT_OBJECT"
		td.Description = describeOr(t.Description)
		td.FieldCount = len(t.Fields)
	}
	return td
}

func describeOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetType looks up a named type definition.
func (s *Schema) GetType(name string) (TypeDefinition, bool) {
	td, ok := s.Types[name]
	return td, ok
}

// Summary renders a one-line-per-type human-readable report, sorted by
// name.
func (s *Schema) Summary() string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		td := s.Types[name]
		fmt.Fprintf(&b, "%s %s", td.Kind, td.Name)
		if td.FieldCount > 0 {
			fmt.Fprintf(&b, " (%d fields)", td.FieldCount)
		}
		b.WriteString("\n")
	}
	return b.String()
}
