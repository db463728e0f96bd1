package parser

import (
	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/token"
)

// parseQueryDocument parses a complete executable document: a sequence
// of operation and fragment definitions.
func (p *parser[T]) parseQueryDocument() *ast.QueryDocument[T] {
	doc := &ast.QueryDocument[T]{}
	for p.peek().Kind != token.EOF {
		doc.Definitions = append(doc.Definitions, p.executableDefinition())
	}
	return doc
}

func (p *parser[T]) executableDefinition() ast.Definition[T] {
	t := p.peek()
	if t.Kind == token.Punctuator && t.Value == "{" {
		return p.shorthandQuery()
	}
	if t.Kind == token.Name {
		switch t.Value {
		case "query", "mutation", "subscription":
			return p.operationDefinition()
		case "fragment":
			return p.fragmentDefinition()
		}
	}
	p.unexpected(t, "operation or fragment definition")
	panic("unreachable")
}

// shorthandQuery parses a bare `{ ... }` as an anonymous query.
func (p *parser[T]) shorthandQuery() *ast.OperationDefinition[T] {
	start := p.peek().Start
	sel := p.selectionSet()
	return &ast.OperationDefinition[T]{
		Position:     start,
		Kind:         ast.Query,
		SelectionSet: sel,
	}
}

func operationKind(kw string) ast.OperationKind {
	switch kw {
	case "mutation":
		return ast.Mutation
	case "subscription":
		return ast.Subscription
	default:
		return ast.Query
	}
}

func (p *parser[T]) operationDefinition() *ast.OperationDefinition[T] {
	kw := p.advance()
	op := &ast.OperationDefinition[T]{Position: kw.Start, Kind: operationKind(kw.Value)}

	if p.peek().Kind == token.Name {
		name := p.name()
		op.Name = &name
	}
	if p.atPunct("(") {
		op.VariableDefinitions = p.variableDefinitions()
	}
	op.Directives = p.directives(false)
	op.SelectionSet = p.selectionSet()
	return op
}

func (p *parser[T]) variableDefinitions() []ast.VariableDefinition[T] {
	p.expectPunct("(")
	var defs []ast.VariableDefinition[T]
	for !p.atPunct(")") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated variable definition list")
		}
		defs = append(defs, p.variableDefinition())
	}
	p.advance()
	return defs
}

func (p *parser[T]) variableDefinition() ast.VariableDefinition[T] {
	dollar := p.expectPunct("$")
	name := p.name()
	p.expectPunct(":")
	ty := p.typeRef()

	var def ast.Value[T]
	if p.atPunct("=") {
		p.advance()
		def = p.value(true)
	}
	dirs := p.directives(true)

	return ast.VariableDefinition[T]{
		Position:     dollar.Start,
		Name:         name,
		Type:         ty,
		DefaultValue: def,
		Directives:   dirs,
	}
}

func (p *parser[T]) fragmentDefinition() *ast.FragmentDefinition[T] {
	kw := p.expectKeyword("fragment")
	nameTok := p.expectName()
	if nameTok.Value == "on" {
		p.fail(UnexpectedToken, nameTok.Start, &nameTok, `fragment name cannot be "on"`)
	}
	p.expectKeyword("on")
	cond := p.name()
	dirs := p.directives(false)
	sel := p.selectionSet()

	return &ast.FragmentDefinition[T]{
		Position:      kw.Start,
		Name:          ast.NewText[T](nameTok.Value),
		TypeCondition: cond,
		Directives:    dirs,
		SelectionSet:  sel,
	}
}

func (p *parser[T]) selectionSet() ast.SelectionSet[T] {
	p.enter()
	defer p.leave()

	open := p.expectPunct("{")
	if p.atPunct("}") {
		t := p.peek()
		p.fail(UnexpectedToken, t.Start, &t, "a selection set must have at least one selection")
	}
	var items []ast.Selection[T]
	for !p.atPunct("}") {
		if p.peek().Kind == token.EOF {
			p.fail(UnexpectedEOF, p.peek().Start, nil, "unterminated selection set")
		}
		items = append(items, p.selection())
	}
	closeTok := p.advance()

	return ast.SelectionSet[T]{Start: open.Start, End: closeTok.End, Items: items}
}

func (p *parser[T]) selection() ast.Selection[T] {
	if p.atPunct("...") {
		return p.fragmentSelection()
	}
	return p.fieldSelection()
}

func (p *parser[T]) fragmentSelection() ast.Selection[T] {
	dots := p.advance()

	if p.atKeyword("on") {
		p.advance()
		cond := p.name()
		dirs := p.directives(false)
		sel := p.selectionSet()
		condCopy := cond
		return &ast.InlineFragment[T]{
			Position:      dots.Start,
			TypeCondition: &condCopy,
			Directives:    dirs,
			SelectionSet:  sel,
		}
	}

	if p.peek().Kind == token.Name {
		nameTok := p.advance()
		dirs := p.directives(false)
		return &ast.FragmentSpread[T]{
			Position:     dots.Start,
			FragmentName: ast.NewText[T](nameTok.Value),
			Directives:   dirs,
		}
	}

	// Bare `... { ... }` or `... @directive { ... }`: untyped inline
	// fragment.
	dirs := p.directives(false)
	sel := p.selectionSet()
	return &ast.InlineFragment[T]{
		Position:     dots.Start,
		Directives:   dirs,
		SelectionSet: sel,
	}
}

func (p *parser[T]) fieldSelection() ast.Selection[T] {
	first := p.expectName()

	var alias *T
	name := first
	if p.atPunct(":") {
		p.advance()
		nameTok := p.expectName()
		a := ast.NewText[T](first.Value)
		alias = &a
		name = nameTok
	}

	field := &ast.Field[T]{
		Position: first.Start,
		Alias:    alias,
		Name:     ast.NewText[T](name.Value),
	}
	field.Arguments = p.arguments(false)
	field.Directives = p.directives(false)
	if p.atPunct("{") {
		sel := p.selectionSet()
		field.SelectionSet = &sel
	}
	return field
}
