// Package docspec defines the service-specification model: an immutable,
// language-neutral description of a service's request/response types built
// from structs, enums, fields and methods. The jsonschema package turns this
// model into JSON Schema documents.
package docspec

// TypeSignatureType identifies the category of a type signature.
type TypeSignatureType int

const (
	TypeBase       TypeSignatureType = iota // Primitive named type ("int", "string", ...)
	TypeStruct                              // Named struct defined in the same specification
	TypeEnum                                // Named enum defined in the same specification
	TypeIterable                            // Ordered collection with a single element type
	TypeMap                                 // Key-value mapping
	TypeUnresolved                          // Type the introspection layer could not classify
)

// String returns the string representation of the signature type.
func (t TypeSignatureType) String() string {
	switch t {
	case TypeBase:
		return "Base"
	case TypeStruct:
		return "Struct"
	case TypeEnum:
		return "Enum"
	case TypeIterable:
		return "Iterable"
	case TypeMap:
		return "Map"
	case TypeUnresolved:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// TypeSignature is the tagged representation of "what type is this field".
// Identity is the (Type, Name, TypeParameters) triple; use Equal to compare.
//
// For TypeStruct and TypeEnum signatures, Name keys into the specification's
// definitions table. The named definition must exist in the same
// specification, except when the signature is used purely as a forward
// reference during construction.
type TypeSignature struct {
	// Type is the signature category.
	Type TypeSignatureType

	// Name is the type name. For TypeIterable it is the collection flavor
	// ("list", "set", "repeated", ...); for TypeMap it is "map".
	Name string

	// TypeParameters holds nested signatures in declaration order:
	// exactly one element type for TypeIterable, key then value for TypeMap,
	// empty otherwise.
	TypeParameters []TypeSignature
}

// BaseType returns a signature for a primitive named type.
func BaseType(name string) TypeSignature {
	return TypeSignature{Type: TypeBase, Name: name}
}

// StructType returns a signature referencing a named struct definition.
func StructType(name string) TypeSignature {
	return TypeSignature{Type: TypeStruct, Name: name}
}

// EnumType returns a signature referencing a named enum definition.
func EnumType(name string) TypeSignature {
	return TypeSignature{Type: TypeEnum, Name: name}
}

// ListType returns an iterable signature with the "list" flavor.
func ListType(element TypeSignature) TypeSignature {
	return IterableType("list", element)
}

// SetType returns an iterable signature with the "set" flavor.
func SetType(element TypeSignature) TypeSignature {
	return IterableType("set", element)
}

// IterableType returns an iterable signature with an explicit flavor name.
func IterableType(name string, element TypeSignature) TypeSignature {
	return TypeSignature{Type: TypeIterable, Name: name, TypeParameters: []TypeSignature{element}}
}

// MapType returns a map signature over the given key and value types.
func MapType(key, value TypeSignature) TypeSignature {
	return TypeSignature{Type: TypeMap, Name: "map", TypeParameters: []TypeSignature{key, value}}
}

// UnresolvedType returns a signature for a type that could not be classified.
func UnresolvedType(name string) TypeSignature {
	return TypeSignature{Type: TypeUnresolved, Name: name}
}

// ElementType returns the element signature of an iterable.
// Returns the zero value for non-iterable signatures.
func (s TypeSignature) ElementType() TypeSignature {
	if s.Type != TypeIterable || len(s.TypeParameters) == 0 {
		return TypeSignature{}
	}
	return s.TypeParameters[0]
}

// KeyType returns the key signature of a map.
// Returns the zero value for non-map signatures.
func (s TypeSignature) KeyType() TypeSignature {
	if s.Type != TypeMap || len(s.TypeParameters) < 2 {
		return TypeSignature{}
	}
	return s.TypeParameters[0]
}

// ValueType returns the value signature of a map.
// Returns the zero value for non-map signatures.
func (s TypeSignature) ValueType() TypeSignature {
	if s.Type != TypeMap || len(s.TypeParameters) < 2 {
		return TypeSignature{}
	}
	return s.TypeParameters[1]
}

// Equal reports whether two signatures have the same kind, name and
// type parameters.
func (s TypeSignature) Equal(other TypeSignature) bool {
	if s.Type != other.Type || s.Name != other.Name {
		return false
	}
	if len(s.TypeParameters) != len(other.TypeParameters) {
		return false
	}
	for i := range s.TypeParameters {
		if !s.TypeParameters[i].Equal(other.TypeParameters[i]) {
			return false
		}
	}
	return true
}

// String returns a compact human-readable rendering, e.g. "list<string>".
func (s TypeSignature) String() string {
	if len(s.TypeParameters) == 0 {
		return s.Name
	}
	out := s.Name + "<"
	for i, p := range s.TypeParameters {
		if i > 0 {
			out += ", "
		}
		out += p.String()
	}
	return out + ">"
}
