// Package minify rewrites an executable GraphQL document into a
// compact, semantically-equivalent source string: unreachable fragments
// dropped, operation/fragment/variable names compacted, and whitespace
// reduced to whatever keeps adjacent tokens from fusing.
package minify

import (
	"strconv"
	"strings"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/parser"
)

// Minify parses src as an executable document and re-serializes it at
// minimum size. It has no error modes of its own: any failure is the
// underlying parse's.
func Minify(src string) (string, *parser.Error) {
	doc, err := parser.ParseQuery[ast.Borrowed](src)
	if err != nil {
		return "", err
	}

	fragDefs := collectFragments(doc)
	reachable := reachableFragments(doc, fragDefs)
	protectedVars := fragmentVariableNames(fragDefs, reachable)

	kept := make([]ast.Definition[ast.Borrowed], 0, len(doc.Definitions))
	fragRename := newRenamer()
	opRename := newRenamer()

	// Fragment names are renamed in document order so the mapping is
	// deterministic regardless of spread order.
	for _, def := range doc.Definitions {
		if frag, ok := def.(*ast.FragmentDefinition[ast.Borrowed]); ok && reachable[string(frag.Name)] {
			fragRename.get(string(frag.Name))
		}
	}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition[ast.Borrowed]:
			if d.Name != nil {
				opRename.get(string(*d.Name))
			}
			kept = append(kept, d)
		case *ast.FragmentDefinition[ast.Borrowed]:
			if reachable[string(d.Name)] {
				kept = append(kept, d)
			}
		}
	}

	w := &writer{}
	for _, def := range kept {
		switch d := def.(type) {
		case *ast.OperationDefinition[ast.Borrowed]:
			writeOperation(w, d, opRename, fragRename, protectedVars)
		case *ast.FragmentDefinition[ast.Borrowed]:
			writeFragment(w, d, fragRename)
		}
	}
	return w.b.String(), nil
}

func collectFragments(doc *ast.QueryDocument[ast.Borrowed]) map[string]*ast.FragmentDefinition[ast.Borrowed] {
	out := map[string]*ast.FragmentDefinition[ast.Borrowed]{}
	for _, def := range doc.Definitions {
		if frag, ok := def.(*ast.FragmentDefinition[ast.Borrowed]); ok {
			out[string(frag.Name)] = frag
		}
	}
	return out
}

// reachableFragments computes the transitive spread closure from every
// operation's selection set.
func reachableFragments(doc *ast.QueryDocument[ast.Borrowed], fragDefs map[string]*ast.FragmentDefinition[ast.Borrowed]) map[string]bool {
	reachable := map[string]bool{}
	var visit func(sel ast.SelectionSet[ast.Borrowed])
	visit = func(sel ast.SelectionSet[ast.Borrowed]) {
		for _, item := range sel.Items {
			switch s := item.(type) {
			case *ast.Field[ast.Borrowed]:
				if s.SelectionSet != nil {
					visit(*s.SelectionSet)
				}
			case *ast.InlineFragment[ast.Borrowed]:
				visit(s.SelectionSet)
			case *ast.FragmentSpread[ast.Borrowed]:
				name := string(s.FragmentName)
				if reachable[name] {
					continue
				}
				frag, ok := fragDefs[name]
				if !ok {
					continue
				}
				reachable[name] = true
				visit(frag.SelectionSet)
			}
		}
	}

	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition[ast.Borrowed]); ok {
			visit(op.SelectionSet)
		}
	}
	return reachable
}

// fragmentVariableNames returns every variable name referenced, directly
// or in a nested selection, inside any of the given reachable fragments.
// A fragment body resolves its variable references from whichever
// operation is executing it, so a variable a shared fragment reads must
// keep the same name in every operation that spreads it — these names
// must never be renamed.
func fragmentVariableNames(fragDefs map[string]*ast.FragmentDefinition[ast.Borrowed], reachable map[string]bool) map[string]bool {
	names := map[string]bool{}

	var visitValue func(v ast.Value[ast.Borrowed])
	visitValue = func(v ast.Value[ast.Borrowed]) {
		switch val := v.(type) {
		case ast.VariableValue[ast.Borrowed]:
			names[string(val.Name)] = true
		case ast.ListValue[ast.Borrowed]:
			for _, item := range val.Values {
				visitValue(item)
			}
		case ast.ObjectValue[ast.Borrowed]:
			for _, f := range val.Fields {
				visitValue(f.Value)
			}
		}
	}
	visitArguments := func(args []ast.Argument[ast.Borrowed]) {
		for _, a := range args {
			visitValue(a.Value)
		}
	}
	visitDirectives := func(dirs []ast.Directive[ast.Borrowed]) {
		for _, d := range dirs {
			visitArguments(d.Arguments)
		}
	}
	var visitSelectionSet func(sel ast.SelectionSet[ast.Borrowed])
	visitSelectionSet = func(sel ast.SelectionSet[ast.Borrowed]) {
		for _, item := range sel.Items {
			switch s := item.(type) {
			case *ast.Field[ast.Borrowed]:
				visitArguments(s.Arguments)
				visitDirectives(s.Directives)
				if s.SelectionSet != nil {
					visitSelectionSet(*s.SelectionSet)
				}
			case *ast.InlineFragment[ast.Borrowed]:
				visitDirectives(s.Directives)
				visitSelectionSet(s.SelectionSet)
			case *ast.FragmentSpread[ast.Borrowed]:
				visitDirectives(s.Directives)
			}
		}
	}

	for name := range reachable {
		frag, ok := fragDefs[name]
		if !ok {
			continue
		}
		visitDirectives(frag.Directives)
		visitSelectionSet(frag.SelectionSet)
	}
	return names
}

// renamer assigns each distinct input name a short output name in
// first-seen order.
type renamer struct {
	assigned map[string]string
	next     int
}

func newRenamer() *renamer {
	return &renamer{assigned: map[string]string{}}
}

func (r *renamer) get(name string) string {
	if out, ok := r.assigned[name]; ok {
		return out
	}
	out := shortName(r.next)
	r.next++
	r.assigned[name] = out
	return out
}

func (r *renamer) lookup(name string) (string, bool) {
	out, ok := r.assigned[name]
	return out, ok
}

// shortName returns the nth identifier (0-indexed) in counter order over
// the alphabet `[_A-Za-z][_A-Za-z0-9]*`: a 53-symbol alphabet for the
// leading character (never a digit, so the result is always a valid
// Name token) and a 63-symbol alphabet for every character after it.
func shortName(n int) string {
	const firstAlphabet = "_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	const contAlphabet = firstAlphabet + "0123456789"
	base1, base2 := len(firstAlphabet), len(contAlphabet)

	length := 1
	count := base1
	for n >= count {
		n -= count
		length++
		count = base1 * intPow(base2, length-1)
	}

	placeValues := make([]int, length)
	placeValues[length-1] = 1
	for i := length - 2; i >= 0; i-- {
		placeValues[i] = placeValues[i+1] * base2
	}

	digits := make([]byte, length)
	remaining := n
	digits[0] = firstAlphabet[remaining/placeValues[0]]
	remaining %= placeValues[0]
	for i := 1; i < length; i++ {
		digits[i] = contAlphabet[remaining/placeValues[i]]
		remaining %= placeValues[i]
	}
	return string(digits)
}

func intPow(b, e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}

// writer accumulates minified source, inserting a single space only
// where two adjacent word-class tokens (names, keywords, numbers) would
// otherwise fuse into one.
type writer struct {
	b        strings.Builder
	lastWord bool
}

func (w *writer) word(s string) {
	if w.lastWord {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(s)
	w.lastWord = true
}

func (w *writer) punct(s string) {
	w.b.WriteString(s)
	w.lastWord = false
}

func writeOperation(w *writer, op *ast.OperationDefinition[ast.Borrowed], opRename, fragRename *renamer, protectedVars map[string]bool) {
	shorthand := op.Name == nil && len(op.VariableDefinitions) == 0 && len(op.Directives) == 0 && op.Kind == ast.Query
	varRename := newRenamer()

	if !shorthand {
		w.word(op.Kind.String())
		if op.Name != nil {
			w.word(opRename.get(string(*op.Name)))
		}
		if len(op.VariableDefinitions) > 0 {
			w.punct("(")
			for _, v := range op.VariableDefinitions {
				writeVariableDefinition(w, v, varRename, fragRename, protectedVars)
			}
			w.punct(")")
		}
		writeDirectives(w, op.Directives, varRename, fragRename)
	}
	writeSelectionSet(w, op.SelectionSet, varRename, fragRename)
}

// writeVariableDefinition renames v's name through varRename, unless a
// reachable fragment reads it by this name — those must keep their
// original spelling so every operation that spreads the fragment agrees
// on what to call it. See fragmentVariableNames.
func writeVariableDefinition(w *writer, v ast.VariableDefinition[ast.Borrowed], varRename, fragRename *renamer, protectedVars map[string]bool) {
	w.punct("$")
	name := string(v.Name)
	if protectedVars[name] {
		w.word(name)
	} else {
		w.word(varRename.get(name))
	}
	w.punct(":")
	w.word(v.Type.String())
	if v.DefaultValue != nil {
		w.punct("=")
		writeValue(w, v.DefaultValue, varRename, fragRename)
	}
	writeDirectives(w, v.Directives, varRename, fragRename)
}

func writeFragment(w *writer, f *ast.FragmentDefinition[ast.Borrowed], fragRename *renamer) {
	varRename := newRenamer() // fragment bodies always reference variables by their original name
	w.word("fragment")
	w.word(fragRename.get(string(f.Name)))
	w.word("on")
	w.word(string(f.TypeCondition))
	writeDirectives(w, f.Directives, varRename, fragRename)
	writeSelectionSet(w, f.SelectionSet, varRename, fragRename)
}

func writeSelectionSet(w *writer, s ast.SelectionSet[ast.Borrowed], varRename, fragRename *renamer) {
	w.punct("{")
	for _, item := range s.Items {
		writeSelection(w, item, varRename, fragRename)
	}
	w.punct("}")
}

func writeSelection(w *writer, sel ast.Selection[ast.Borrowed], varRename, fragRename *renamer) {
	switch s := sel.(type) {
	case *ast.Field[ast.Borrowed]:
		if s.Alias != nil {
			w.word(string(*s.Alias))
			w.punct(":")
			w.word(string(s.Name))
		} else {
			w.word(string(s.Name))
		}
		if len(s.Arguments) > 0 {
			w.punct("(")
			for _, a := range s.Arguments {
				writeArgument(w, a, varRename, fragRename)
			}
			w.punct(")")
		}
		writeDirectives(w, s.Directives, varRename, fragRename)
		if s.SelectionSet != nil {
			writeSelectionSet(w, *s.SelectionSet, varRename, fragRename)
		}
	case *ast.FragmentSpread[ast.Borrowed]:
		w.punct("...")
		name := string(s.FragmentName)
		if renamed, ok := fragRename.lookup(name); ok {
			w.word(renamed)
		} else {
			w.word(name)
		}
		writeDirectives(w, s.Directives, varRename, fragRename)
	case *ast.InlineFragment[ast.Borrowed]:
		w.punct("...")
		if s.TypeCondition != nil {
			w.word("on")
			w.word(string(*s.TypeCondition))
		}
		writeDirectives(w, s.Directives, varRename, fragRename)
		writeSelectionSet(w, s.SelectionSet, varRename, fragRename)
	}
}

func writeArgument(w *writer, a ast.Argument[ast.Borrowed], varRename, fragRename *renamer) {
	w.word(string(a.Name))
	w.punct(":")
	writeValue(w, a.Value, varRename, fragRename)
}

func writeDirectives(w *writer, dirs []ast.Directive[ast.Borrowed], varRename, fragRename *renamer) {
	for _, d := range dirs {
		w.punct("@")
		w.word(string(d.Name))
		if len(d.Arguments) > 0 {
			w.punct("(")
			for _, a := range d.Arguments {
				writeArgument(w, a, varRename, fragRename)
			}
			w.punct(")")
		}
	}
}

func writeValue(w *writer, v ast.Value[ast.Borrowed], varRename, fragRename *renamer) {
	switch val := v.(type) {
	case ast.VariableValue[ast.Borrowed]:
		w.punct("$")
		name := string(val.Name)
		if renamed, ok := varRename.lookup(name); ok {
			w.word(renamed)
		} else {
			w.word(name)
		}
	case ast.IntValue:
		w.word(strconv.FormatInt(val.Value, 10))
	case ast.FloatValue:
		w.word(formatFloat(val.Value))
	case ast.StringValue:
		w.punct(quoteCompact(val.Value, val.Block))
	case ast.BooleanValue:
		w.word(strconv.FormatBool(val.Value))
	case ast.NullValue:
		w.word("null")
	case ast.EnumValue[ast.Borrowed]:
		w.word(string(val.Value))
	case ast.ListValue[ast.Borrowed]:
		w.punct("[")
		for _, item := range val.Values {
			writeValue(w, item, varRename, fragRename)
		}
		w.punct("]")
	case ast.ObjectValue[ast.Borrowed]:
		w.punct("{")
		for _, f := range val.Fields {
			w.word(string(f.Name))
			w.punct(":")
			writeValue(w, f.Value, varRename, fragRename)
		}
		w.punct("}")
	}
}

// formatFloat renders a float64 so it always re-lexes as a FloatValue,
// never an IntValue: an integer-valued float like 1.0 needs an explicit
// ".0" appended, or it re-parses as a different value type entirely.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteCompact renders a string value so that it re-parses to exactly
// the same contents. A block string whose contents span several lines
// stays a block string, with a line break after the opening and before
// the closing delimiter so block-string normalization on re-parse
// leaves the contents unchanged. Everything else, including a regular
// string whose escapes produced a line break, becomes a single-line
// string with the line break escaped.
func quoteCompact(s string, block bool) string {
	if block && strings.ContainsAny(s, "\n\r") {
		return `"""` + "\n" + strings.ReplaceAll(s, `"""`, `\"""`) + "\n" + `"""`
	}
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
