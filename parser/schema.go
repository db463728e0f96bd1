package parser

import (
	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/token"
)

// parseSchemaDocument parses a complete schema document: a sequence of
// type-system definitions and extensions.
func (p *parser[T]) parseSchemaDocument() *ast.SchemaDocument[T] {
	doc := &ast.SchemaDocument[T]{}
	for p.peek().Kind != token.EOF {
		doc.Definitions = append(doc.Definitions, p.typeSystemDefinition())
	}
	return doc
}

func (p *parser[T]) typeSystemDefinition() ast.TypeSystemDefinition[T] {
	if p.atKeyword("extend") {
		return p.typeSystemExtension()
	}

	desc := p.description()
	t := p.peek()
	if t.Kind != token.Name {
		p.unexpected(t, "type system definition")
	}

	switch t.Value {
	case "schema":
		return p.schemaDefinition()
	case "scalar":
		return p.scalarType(desc)
	case "type":
		return p.objectType(desc)
	case "interface":
		return p.interfaceType(desc)
	case "union":
		return p.unionType(desc)
	case "enum":
		return p.enumType(desc)
	case "input":
		return p.inputObjectType(desc)
	case "directive":
		return p.directiveDefinition(desc)
	default:
		p.unexpected(t, "type system definition")
		panic("unreachable")
	}
}

// schemaDefinition parses `schema { ... }`. Unlike the six type
// definition kinds, SchemaDefinition has no description field in the
// grammar, so any description() result preceding it is simply dropped
// by the caller.
func (p *parser[T]) schemaDefinition() *ast.SchemaDefinition[T] {
	kw := p.expectKeyword("schema")
	dirs := p.directives(false)
	def := &ast.SchemaDefinition[T]{Position: kw.Start, Directives: dirs}
	p.expectPunct("{")
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated schema definition")
		}
		opName := p.expectName()
		p.expectPunct(":")
		ty := p.name()
		switch opName.Value {
		case "query":
			def.Query = &ty
		case "mutation":
			def.Mutation = &ty
		case "subscription":
			def.Subscription = &ty
		default:
			p.fail(UnexpectedToken, opName.Start, &opName, "unknown root operation type %q", opName.Value)
		}
	}
	p.advance()
	return def
}

func (p *parser[T]) directiveList() []ast.Directive[T] {
	return p.directives(false)
}

func (p *parser[T]) scalarType(desc *string) *ast.ScalarType[T] {
	kw := p.expectKeyword("scalar")
	name := p.name()
	dirs := p.directiveList()
	return &ast.ScalarType[T]{Position: kw.Start, Description: desc, Name: name, Directives: dirs}
}

// implementsClause parses an optional `implements A & B & C` clause. A
// leading `&` before the first interface name is permitted.
func (p *parser[T]) implementsClause() []T {
	if !p.atKeyword("implements") {
		return nil
	}
	p.advance()
	if p.atPunct("&") {
		p.advance()
	}
	var out []T
	out = append(out, p.name())
	for p.atPunct("&") {
		p.advance()
		out = append(out, p.name())
	}
	return out
}

func (p *parser[T]) fieldDefinitions() []ast.FieldDefinition[T] {
	if !p.atPunct("{") {
		return nil
	}
	p.advance()
	if p.atPunct("}") {
		t := p.peek()
		p.fail(UnexpectedToken, t.Start, &t, "a field list must have at least one field")
	}
	var fields []ast.FieldDefinition[T]
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated field list")
		}
		fields = append(fields, p.fieldDefinition())
	}
	p.advance()
	return fields
}

func (p *parser[T]) fieldDefinition() ast.FieldDefinition[T] {
	desc := p.description()
	nameTok := p.expectName()
	args := p.argumentDefinitions()
	p.expectPunct(":")
	ty := p.typeRef()
	dirs := p.directiveList()
	return ast.FieldDefinition[T]{
		Position:    nameTok.Start,
		Description: desc,
		Name:        ast.NewText[T](nameTok.Value),
		Arguments:   args,
		Type:        ty,
		Directives:  dirs,
	}
}

func (p *parser[T]) argumentDefinitions() []ast.InputValueDefinition[T] {
	if !p.atPunct("(") {
		return nil
	}
	p.advance()
	if p.atPunct(")") {
		t := p.peek()
		p.fail(UnexpectedToken, t.Start, &t, "an argument definition list must have at least one argument")
	}
	var defs []ast.InputValueDefinition[T]
	for !p.atPunct(")") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated argument definition list")
		}
		defs = append(defs, p.inputValueDefinition())
	}
	p.advance()
	return defs
}

func (p *parser[T]) inputValueDefinition() ast.InputValueDefinition[T] {
	desc := p.description()
	nameTok := p.expectName()
	p.expectPunct(":")
	ty := p.typeRef()
	var def ast.Value[T]
	if p.atPunct("=") {
		p.advance()
		def = p.value(true)
	}
	dirs := p.directiveList()
	return ast.InputValueDefinition[T]{
		Position:     nameTok.Start,
		Description:  desc,
		Name:         ast.NewText[T](nameTok.Value),
		Type:         ty,
		DefaultValue: def,
		Directives:   dirs,
	}
}

func (p *parser[T]) objectType(desc *string) *ast.ObjectType[T] {
	kw := p.expectKeyword("type")
	name := p.name()
	ifaces := p.implementsClause()
	dirs := p.directiveList()
	fields := p.fieldDefinitions()
	return &ast.ObjectType[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Interfaces:  ifaces,
		Directives:  dirs,
		Fields:      fields,
	}
}

func (p *parser[T]) interfaceType(desc *string) *ast.InterfaceType[T] {
	kw := p.expectKeyword("interface")
	name := p.name()
	ifaces := p.implementsClause()
	dirs := p.directiveList()
	fields := p.fieldDefinitions()
	return &ast.InterfaceType[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Interfaces:  ifaces,
		Directives:  dirs,
		Fields:      fields,
	}
}

// unionMemberTypes parses an optional `= A | B | C` clause. A leading
// `|` before the first member is permitted.
func (p *parser[T]) unionMemberTypes() []T {
	if !p.atPunct("=") {
		return nil
	}
	p.advance()
	if p.atPunct("|") {
		p.advance()
	}
	var out []T
	out = append(out, p.name())
	for p.atPunct("|") {
		p.advance()
		out = append(out, p.name())
	}
	return out
}

func (p *parser[T]) unionType(desc *string) *ast.UnionType[T] {
	kw := p.expectKeyword("union")
	name := p.name()
	dirs := p.directiveList()
	members := p.unionMemberTypes()
	return &ast.UnionType[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Directives:  dirs,
		Types:       members,
	}
}

func (p *parser[T]) enumValues() []ast.EnumValueDefinition[T] {
	if !p.atPunct("{") {
		return nil
	}
	p.advance()
	if p.atPunct("}") {
		t := p.peek()
		p.fail(UnexpectedToken, t.Start, &t, "an enum value list must have at least one value")
	}
	var out []ast.EnumValueDefinition[T]
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated enum value list")
		}
		desc := p.description()
		nameTok := p.expectName()
		dirs := p.directiveList()
		out = append(out, ast.EnumValueDefinition[T]{
			Position:    nameTok.Start,
			Description: desc,
			Name:        ast.NewText[T](nameTok.Value),
			Directives:  dirs,
		})
	}
	p.advance()
	return out
}

func (p *parser[T]) enumType(desc *string) *ast.EnumType[T] {
	kw := p.expectKeyword("enum")
	name := p.name()
	dirs := p.directiveList()
	values := p.enumValues()
	return &ast.EnumType[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Directives:  dirs,
		Values:      values,
	}
}

func (p *parser[T]) inputFields() []ast.InputValueDefinition[T] {
	if !p.atPunct("{") {
		return nil
	}
	p.advance()
	if p.atPunct("}") {
		t := p.peek()
		p.fail(UnexpectedToken, t.Start, &t, "an input field list must have at least one field")
	}
	var out []ast.InputValueDefinition[T]
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated input field list")
		}
		out = append(out, p.inputValueDefinition())
	}
	p.advance()
	return out
}

func (p *parser[T]) inputObjectType(desc *string) *ast.InputObjectType[T] {
	kw := p.expectKeyword("input")
	name := p.name()
	dirs := p.directiveList()
	fields := p.inputFields()
	return &ast.InputObjectType[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Directives:  dirs,
		Fields:      fields,
	}
}

// directiveLocations parses `on LOC (| LOC)*`. A leading `|` before the
// first location is permitted.
func (p *parser[T]) directiveLocations() []ast.DirectiveLocation {
	p.expectKeyword("on")
	if p.atPunct("|") {
		p.advance()
	}
	var out []ast.DirectiveLocation
	out = append(out, p.directiveLocation())
	for p.atPunct("|") {
		p.advance()
		out = append(out, p.directiveLocation())
	}
	return out
}

func (p *parser[T]) directiveLocation() ast.DirectiveLocation {
	nameTok := p.expectName()
	loc, ok := ast.ParseDirectiveLocation(nameTok.Value)
	if !ok {
		p.fail(InvalidDirectiveLocation, nameTok.Start, &nameTok, "unknown directive location %q", nameTok.Value)
	}
	return loc
}

func (p *parser[T]) directiveDefinition(desc *string) *ast.DirectiveDefinition[T] {
	kw := p.expectKeyword("directive")
	p.expectPunct("@")
	name := p.name()
	args := p.argumentDefinitions()

	repeatable := false
	if p.atKeyword("repeatable") {
		p.advance()
		repeatable = true
	}
	locs := p.directiveLocations()

	return &ast.DirectiveDefinition[T]{
		Position:    kw.Start,
		Description: desc,
		Name:        name,
		Arguments:   args,
		Repeatable:  repeatable,
		Locations:   locs,
	}
}

// typeSystemExtension dispatches the six `extend <kind>` forms plus
// `extend schema`. None of them may carry a description.
func (p *parser[T]) typeSystemExtension() ast.TypeSystemDefinition[T] {
	extendKw := p.expectKeyword("extend")
	t := p.peek()
	if t.Kind != token.Name {
		p.unexpected(t, "extension kind")
	}

	switch t.Value {
	case "schema":
		return p.schemaExtension(extendKw)
	case "scalar":
		return p.scalarTypeExtension()
	case "type":
		return p.objectTypeExtension()
	case "interface":
		return p.interfaceTypeExtension()
	case "union":
		return p.unionTypeExtension()
	case "enum":
		return p.enumTypeExtension()
	case "input":
		return p.inputObjectTypeExtension()
	default:
		p.unexpected(t, "extension kind")
		panic("unreachable")
	}
}

func (p *parser[T]) schemaExtension(extendKw token.Token) *ast.SchemaExtension[T] {
	p.advance() // "schema"
	dirs := p.directiveList()

	ext := &ast.SchemaExtension[T]{Position: extendKw.Start, Directives: dirs}
	if !p.atPunct("{") {
		if len(dirs) == 0 {
			p.fail(EmptyExtension, extendKw.Start, &extendKw, "schema extension adds nothing")
		}
		return ext
	}

	p.advance()
	addedOp := false
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated schema extension")
		}
		addedOp = true
		opName := p.expectName()
		p.expectPunct(":")
		ty := p.name()
		switch opName.Value {
		case "query":
			ext.Query = &ty
		case "mutation":
			ext.Mutation = &ty
		case "subscription":
			ext.Subscription = &ty
		default:
			p.fail(UnexpectedToken, opName.Start, &opName, "unknown root operation type %q", opName.Value)
		}
	}
	p.advance()
	if !addedOp && len(dirs) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "schema extension adds nothing")
	}
	return ext
}

func (p *parser[T]) scalarTypeExtension() *ast.ScalarTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "scalar"
	name := p.name()
	dirs := p.directiveList()
	if len(dirs) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "scalar extension adds nothing")
	}
	return &ast.ScalarTypeExtension[T]{Position: extendKw.Start, Name: name, Directives: dirs}
}

func (p *parser[T]) objectTypeExtension() *ast.ObjectTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "type"
	name := p.name()
	ifaces := p.implementsClause()
	dirs := p.directiveList()
	fields := p.fieldDefinitions()
	if len(ifaces) == 0 && len(dirs) == 0 && len(fields) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "object type extension adds nothing")
	}
	return &ast.ObjectTypeExtension[T]{
		Position: extendKw.Start, Name: name, Interfaces: ifaces, Directives: dirs, Fields: fields,
	}
}

func (p *parser[T]) interfaceTypeExtension() *ast.InterfaceTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "interface"
	name := p.name()
	ifaces := p.implementsClause()
	dirs := p.directiveList()
	fields := p.fieldDefinitions()
	if len(ifaces) == 0 && len(dirs) == 0 && len(fields) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "interface type extension adds nothing")
	}
	return &ast.InterfaceTypeExtension[T]{
		Position: extendKw.Start, Name: name, Interfaces: ifaces, Directives: dirs, Fields: fields,
	}
}

func (p *parser[T]) unionTypeExtension() *ast.UnionTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "union"
	name := p.name()
	dirs := p.directiveList()
	members := p.unionMemberTypes()
	if len(dirs) == 0 && len(members) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "union type extension adds nothing")
	}
	return &ast.UnionTypeExtension[T]{Position: extendKw.Start, Name: name, Directives: dirs, Types: members}
}

func (p *parser[T]) enumTypeExtension() *ast.EnumTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "enum"
	name := p.name()
	dirs := p.directiveList()
	values := p.enumValues()
	if len(dirs) == 0 && len(values) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "enum type extension adds nothing")
	}
	return &ast.EnumTypeExtension[T]{Position: extendKw.Start, Name: name, Directives: dirs, Values: values}
}

func (p *parser[T]) inputObjectTypeExtension() *ast.InputObjectTypeExtension[T] {
	extendKw := p.peek()
	p.advance() // "input"
	name := p.name()
	dirs := p.directiveList()
	fields := p.inputFields()
	if len(dirs) == 0 && len(fields) == 0 {
		p.fail(EmptyExtension, extendKw.Start, &extendKw, "input object type extension adds nothing")
	}
	return &ast.InputObjectTypeExtension[T]{Position: extendKw.Start, Name: name, Directives: dirs, Fields: fields}
}
