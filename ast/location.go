package ast

// DirectiveLocation is one of the 19 closed locations a directive
// definition may target, split between executable (query) locations and
// type-system (schema) locations. The string mapping is bijective and
// case-sensitive, following the reference implementation
// (original_source/src/schema/ast.rs) exactly.
type DirectiveLocation int

const (
	// Executable locations.
	LocationQuery DirectiveLocation = iota
	LocationMutation
	LocationSubscription
	LocationField
	LocationFragmentDefinition
	LocationFragmentSpread
	LocationInlineFragment

	// Type-system locations.
	LocationSchema
	LocationScalar
	LocationObject
	LocationFieldDefinition
	LocationArgumentDefinition
	LocationInterface
	LocationUnion
	LocationEnum
	LocationEnumValue
	LocationInputObject
	LocationInputFieldDefinition
	LocationVariableDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	LocationQuery:                "QUERY",
	LocationMutation:             "MUTATION",
	LocationSubscription:         "SUBSCRIPTION",
	LocationField:                "FIELD",
	LocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	LocationFragmentSpread:       "FRAGMENT_SPREAD",
	LocationInlineFragment:       "INLINE_FRAGMENT",
	LocationSchema:               "SCHEMA",
	LocationScalar:               "SCALAR",
	LocationObject:               "OBJECT",
	LocationFieldDefinition:      "FIELD_DEFINITION",
	LocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	LocationInterface:            "INTERFACE",
	LocationUnion:                "UNION",
	LocationEnum:                 "ENUM",
	LocationEnumValue:            "ENUM_VALUE",
	LocationInputObject:          "INPUT_OBJECT",
	LocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
	LocationVariableDefinition:   "VARIABLE_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	m := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for loc, name := range directiveLocationNames {
		m[name] = loc
	}
	return m
}()

// String returns the SCREAMING_SNAKE_CASE GraphQL syntax for a location.
func (l DirectiveLocation) String() string {
	return directiveLocationNames[l]
}

// ParseDirectiveLocation looks up a DirectiveLocation by its exact
// SCREAMING_SNAKE_CASE name. ok is false for any unknown name.
func ParseDirectiveLocation(name string) (loc DirectiveLocation, ok bool) {
	loc, ok = directiveLocationsByName[name]
	return
}

// IsQuery reports whether this location applies to executable documents.
func (l DirectiveLocation) IsQuery() bool {
	switch l {
	case LocationQuery, LocationMutation, LocationSubscription, LocationField,
		LocationFragmentDefinition, LocationFragmentSpread, LocationInlineFragment:
		return true
	default:
		return false
	}
}

// IsSchema reports whether this location applies to schema documents.
func (l DirectiveLocation) IsSchema() bool {
	return !l.IsQuery()
}
