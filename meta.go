package docspec

// Declarative metadata interfaces consumed by the resolver chain in the
// provider package. A type opts in by implementing them on its value or
// pointer receiver; a descriptor value passed to a resolver may also
// implement them directly.

// Polymorphic declares discriminated-union metadata for a base type:
// the property whose value selects the concrete subtype, and the ordered
// list of subtype descriptors.
type Polymorphic interface {
	// DiscriminatorProperty returns the discriminator property name.
	// An empty name means the metadata is incomplete and resolution
	// falls through to the next resolver.
	DiscriminatorProperty() string

	// SubTypes returns the concrete subtype descriptors in declaration
	// order. Each entry is a value, a pointer, or a reflect.Type.
	SubTypes() []any
}

// Enumerable declares the value set of an enum-like type. Runtime
// reflection cannot enumerate Go constants, so enum descriptions are only
// available through this interface.
type Enumerable interface {
	// EnumValues returns the constant names in declaration order.
	EnumValues() []string
}

// Described provides optional human-readable documentation for a type.
// Its absence is never an error; resolvers substitute an empty description.
type Described interface {
	TypeDescription() string
}
