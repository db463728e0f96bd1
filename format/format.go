// Package format pretty-prints parsed GraphQL documents back to source
// text. It is a straightforward recursive tree walk, generic over the
// same T the ast package is parameterized on. Formatting and parsing
// round-trip: format(parse(s)) parses back to a document equal to
// parse(s), modulo source positions and insignificant surface choices
// (descriptions are always rendered as block strings and string values
// always as single-line strings, regardless of how they were originally
// written, so StringValue.Block does not survive the round trip).
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semtexzv/graphql-parser/ast"
)

const indentUnit = "  "

// printer is a concrete (non-generic) accumulator; Go methods cannot
// carry their own type parameters, so every tree-shaped production is a
// free function taking *printer as its first argument instead.
type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) writeIndent() { p.b.WriteString(strings.Repeat(indentUnit, p.indent)) }

func (p *printer) str(s string) { p.b.WriteString(s) }

// QueryDocument formats a parsed executable document.
func QueryDocument[T ast.Text](doc *ast.QueryDocument[T]) string {
	p := &printer{}
	for i, def := range doc.Definitions {
		if i > 0 {
			p.b.WriteByte('\n')
		}
		switch d := def.(type) {
		case *ast.OperationDefinition[T]:
			operationDefinition(p, d)
		case *ast.FragmentDefinition[T]:
			fragmentDefinition(p, d)
		}
	}
	return p.b.String()
}

// SchemaDocument formats a parsed schema document.
func SchemaDocument[T ast.Text](doc *ast.SchemaDocument[T]) string {
	p := &printer{}
	for i, def := range doc.Definitions {
		if i > 0 {
			p.b.WriteByte('\n')
		}
		typeSystemDefinition[T](p, def)
	}
	return p.b.String()
}

func isShorthand[T ast.Text](op *ast.OperationDefinition[T]) bool {
	return op.Name == nil && len(op.VariableDefinitions) == 0 && len(op.Directives) == 0 && op.Kind == ast.Query
}

func operationDefinition[T ast.Text](p *printer, op *ast.OperationDefinition[T]) {
	if isShorthand(op) {
		selectionSet(p, op.SelectionSet)
		return
	}

	p.str(op.Kind.String())
	if op.Name != nil {
		p.str(" ")
		p.str(string(*op.Name))
	}
	if len(op.VariableDefinitions) > 0 {
		p.str("(")
		for i, v := range op.VariableDefinitions {
			if i > 0 {
				p.str(", ")
			}
			variableDefinition(p, v)
		}
		p.str(")")
	}
	directives(p, op.Directives)
	p.str(" ")
	selectionSet(p, op.SelectionSet)
}

func variableDefinition[T ast.Text](p *printer, v ast.VariableDefinition[T]) {
	p.str("$")
	p.str(string(v.Name))
	p.str(": ")
	p.str(v.Type.String())
	if v.DefaultValue != nil {
		p.str(" = ")
		value[T](p, v.DefaultValue)
	}
	directives(p, v.Directives)
}

func fragmentDefinition[T ast.Text](p *printer, f *ast.FragmentDefinition[T]) {
	p.str("fragment ")
	p.str(string(f.Name))
	p.str(" on ")
	p.str(string(f.TypeCondition))
	directives(p, f.Directives)
	p.str(" ")
	selectionSet(p, f.SelectionSet)
}

func selectionSet[T ast.Text](p *printer, s ast.SelectionSet[T]) {
	p.b.WriteString("{\n")
	p.indent++
	for _, sel := range s.Items {
		selection[T](p, sel)
	}
	p.indent--
	p.writeIndent()
	p.b.WriteString("}\n")
}

func selection[T ast.Text](p *printer, sel ast.Selection[T]) {
	p.writeIndent()
	switch s := sel.(type) {
	case *ast.Field[T]:
		if s.Alias != nil {
			p.str(string(*s.Alias))
			p.str(": ")
		}
		p.str(string(s.Name))
		if len(s.Arguments) > 0 {
			p.str("(")
			for i, a := range s.Arguments {
				if i > 0 {
					p.str(", ")
				}
				argument(p, a)
			}
			p.str(")")
		}
		directives(p, s.Directives)
		if s.SelectionSet != nil {
			p.str(" ")
			selectionSet(p, *s.SelectionSet)
		} else {
			p.b.WriteByte('\n')
		}
	case *ast.FragmentSpread[T]:
		p.str("...")
		p.str(string(s.FragmentName))
		directives(p, s.Directives)
		p.b.WriteByte('\n')
	case *ast.InlineFragment[T]:
		p.str("...")
		if s.TypeCondition != nil {
			p.str(" on ")
			p.str(string(*s.TypeCondition))
		}
		directives(p, s.Directives)
		p.str(" ")
		selectionSet(p, s.SelectionSet)
	}
}

func argument[T ast.Text](p *printer, a ast.Argument[T]) {
	p.str(string(a.Name))
	p.str(": ")
	value[T](p, a.Value)
}

func directives[T ast.Text](p *printer, dirs []ast.Directive[T]) {
	for _, d := range dirs {
		p.str(" @")
		p.str(string(d.Name))
		if len(d.Arguments) > 0 {
			p.str("(")
			for i, a := range d.Arguments {
				if i > 0 {
					p.str(", ")
				}
				argument(p, a)
			}
			p.str(")")
		}
	}
}

func value[T ast.Text](p *printer, v ast.Value[T]) {
	switch val := v.(type) {
	case ast.VariableValue[T]:
		p.str("$")
		p.str(string(val.Name))
	case ast.IntValue:
		p.str(strconv.FormatInt(val.Value, 10))
	case ast.FloatValue:
		p.str(formatFloat(val.Value))
	case ast.StringValue:
		p.str(quoteString(val.Value))
	case ast.BooleanValue:
		p.str(strconv.FormatBool(val.Value))
	case ast.NullValue:
		p.str("null")
	case ast.EnumValue[T]:
		p.str(string(val.Value))
	case ast.ListValue[T]:
		p.str("[")
		for i, item := range val.Values {
			if i > 0 {
				p.str(", ")
			}
			value[T](p, item)
		}
		p.str("]")
	case ast.ObjectValue[T]:
		p.str("{")
		for i, f := range val.Fields {
			if i > 0 {
				p.str(", ")
			}
			p.str(string(f.Name))
			p.str(": ")
			value[T](p, f.Value)
		}
		p.str("}")
	}
}

// formatFloat renders a float64 so it always re-lexes as a FloatValue,
// never an IntValue: the lexer only classifies a number as a float when
// its text has a `.` or an exponent (token/lex.go), so an integer-valued
// float like 1.0 needs an explicit ".0" appended.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString renders s as a single-line GraphQL string literal,
// escaping the characters the grammar requires.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func description(p *printer, desc *string) {
	if desc == nil {
		return
	}
	p.writeIndent()
	p.str(`"""`)
	p.b.WriteByte('\n')
	for _, line := range strings.Split(*desc, "\n") {
		p.writeIndent()
		p.str(line)
		p.b.WriteByte('\n')
	}
	p.writeIndent()
	p.str(`"""`)
	p.b.WriteByte('\n')
}

func typeSystemDefinition[T ast.Text](p *printer, def ast.TypeSystemDefinition[T]) {
	switch d := def.(type) {
	case *ast.SchemaDefinition[T]:
		schemaDefinition(p, d)
	case *ast.SchemaExtension[T]:
		schemaExtension(p, d)
	case *ast.ScalarType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("scalar ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		p.b.WriteByte('\n')
	case *ast.ObjectType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("type ")
		p.str(string(d.Name))
		implements(p, d.Interfaces)
		directives(p, d.Directives)
		fieldDefinitions(p, d.Fields)
	case *ast.InterfaceType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("interface ")
		p.str(string(d.Name))
		implements(p, d.Interfaces)
		directives(p, d.Directives)
		fieldDefinitions(p, d.Fields)
	case *ast.UnionType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("union ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		unionMembers(p, d.Types)
	case *ast.EnumType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("enum ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		enumValues(p, d.Values)
	case *ast.InputObjectType[T]:
		description(p, d.Description)
		p.writeIndent()
		p.str("input ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		inputValueDefinitions(p, d.Fields, true)
	case *ast.ScalarTypeExtension[T]:
		p.writeIndent()
		p.str("extend scalar ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		p.b.WriteByte('\n')
	case *ast.ObjectTypeExtension[T]:
		p.writeIndent()
		p.str("extend type ")
		p.str(string(d.Name))
		implements(p, d.Interfaces)
		directives(p, d.Directives)
		fieldDefinitions(p, d.Fields)
	case *ast.InterfaceTypeExtension[T]:
		p.writeIndent()
		p.str("extend interface ")
		p.str(string(d.Name))
		implements(p, d.Interfaces)
		directives(p, d.Directives)
		fieldDefinitions(p, d.Fields)
	case *ast.UnionTypeExtension[T]:
		p.writeIndent()
		p.str("extend union ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		unionMembers(p, d.Types)
	case *ast.EnumTypeExtension[T]:
		p.writeIndent()
		p.str("extend enum ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		enumValues(p, d.Values)
	case *ast.InputObjectTypeExtension[T]:
		p.writeIndent()
		p.str("extend input ")
		p.str(string(d.Name))
		directives(p, d.Directives)
		inputValueDefinitions(p, d.Fields, true)
	case *ast.DirectiveDefinition[T]:
		directiveDefinition(p, d)
	}
}

func schemaDefinition[T ast.Text](p *printer, d *ast.SchemaDefinition[T]) {
	p.writeIndent()
	p.str("schema")
	directives(p, d.Directives)
	p.str(" {\n")
	p.indent++
	rootOperations(p, d.Query, d.Mutation, d.Subscription)
	p.indent--
	p.writeIndent()
	p.str("}\n")
}

func schemaExtension[T ast.Text](p *printer, d *ast.SchemaExtension[T]) {
	p.writeIndent()
	p.str("extend schema")
	directives(p, d.Directives)
	if d.Query == nil && d.Mutation == nil && d.Subscription == nil {
		p.b.WriteByte('\n')
		return
	}
	p.str(" {\n")
	p.indent++
	rootOperations(p, d.Query, d.Mutation, d.Subscription)
	p.indent--
	p.writeIndent()
	p.str("}\n")
}

func rootOperations[T ast.Text](p *printer, query, mutation, subscription *T) {
	if query != nil {
		p.writeIndent()
		fmt.Fprintf(&p.b, "query: %s\n", string(*query))
	}
	if mutation != nil {
		p.writeIndent()
		fmt.Fprintf(&p.b, "mutation: %s\n", string(*mutation))
	}
	if subscription != nil {
		p.writeIndent()
		fmt.Fprintf(&p.b, "subscription: %s\n", string(*subscription))
	}
}

func implements[T ast.Text](p *printer, ifaces []T) {
	if len(ifaces) == 0 {
		return
	}
	p.str(" implements ")
	for i, iface := range ifaces {
		if i > 0 {
			p.str(" & ")
		}
		p.str(string(iface))
	}
}

func unionMembers[T ast.Text](p *printer, members []T) {
	if len(members) == 0 {
		p.b.WriteByte('\n')
		return
	}
	p.str(" = ")
	for i, m := range members {
		if i > 0 {
			p.str(" | ")
		}
		p.str(string(m))
	}
	p.b.WriteByte('\n')
}

func fieldDefinitions[T ast.Text](p *printer, fields []ast.FieldDefinition[T]) {
	if len(fields) == 0 {
		p.b.WriteByte('\n')
		return
	}
	p.str(" {\n")
	p.indent++
	for _, f := range fields {
		description(p, f.Description)
		p.writeIndent()
		p.str(string(f.Name))
		inputValueDefinitions(p, f.Arguments, false)
		p.str(": ")
		p.str(f.Type.String())
		directives(p, f.Directives)
		p.b.WriteByte('\n')
	}
	p.indent--
	p.writeIndent()
	p.str("}\n")
}

// inputValueDefinitions prints an argument list (asLines=false, wrapped
// in parens on one line) or an input-object/field-extension field block
// (asLines=true, one field per line in braces).
func inputValueDefinitions[T ast.Text](p *printer, defs []ast.InputValueDefinition[T], asLines bool) {
	if len(defs) == 0 {
		if asLines {
			p.b.WriteByte('\n')
		}
		return
	}
	if !asLines {
		p.str("(")
		for i, d := range defs {
			if i > 0 {
				p.str(", ")
			}
			inputValueDefinition(p, d)
		}
		p.str(")")
		return
	}

	p.str(" {\n")
	p.indent++
	for _, d := range defs {
		description(p, d.Description)
		p.writeIndent()
		inputValueDefinition(p, d)
		p.b.WriteByte('\n')
	}
	p.indent--
	p.writeIndent()
	p.str("}\n")
}

func inputValueDefinition[T ast.Text](p *printer, d ast.InputValueDefinition[T]) {
	p.str(string(d.Name))
	p.str(": ")
	p.str(d.Type.String())
	if d.DefaultValue != nil {
		p.str(" = ")
		value[T](p, d.DefaultValue)
	}
	directives(p, d.Directives)
}

func enumValues[T ast.Text](p *printer, values []ast.EnumValueDefinition[T]) {
	if len(values) == 0 {
		p.b.WriteByte('\n')
		return
	}
	p.str(" {\n")
	p.indent++
	for _, v := range values {
		description(p, v.Description)
		p.writeIndent()
		p.str(string(v.Name))
		directives(p, v.Directives)
		p.b.WriteByte('\n')
	}
	p.indent--
	p.writeIndent()
	p.str("}\n")
}

func directiveDefinition[T ast.Text](p *printer, d *ast.DirectiveDefinition[T]) {
	description(p, d.Description)
	p.writeIndent()
	p.str("directive @")
	p.str(string(d.Name))
	inputValueDefinitions(p, d.Arguments, false)
	if d.Repeatable {
		p.str(" repeatable")
	}
	p.str(" on ")
	for i, loc := range d.Locations {
		if i > 0 {
			p.str(" | ")
		}
		p.str(loc.String())
	}
	p.b.WriteByte('\n')
}
