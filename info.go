package docspec

// NamedTypeInfo is the description of a named type: either a *StructInfo or
// an *EnumInfo. The resolver chain in the provider package produces values
// of this interface.
type NamedTypeInfo interface {
	// TypeName returns the definitions-table key for this type.
	TypeName() string

	// Ensure only types in this package can implement NamedTypeInfo.
	sealed()
}

// DiscriminatorInfo names the property whose value selects a concrete
// subtype of a polymorphic struct at deserialization time.
type DiscriminatorInfo struct {
	PropertyName string `json:"propertyName" validate:"required"`
}

// StructInfo describes a named record type, or a discriminated union over
// other structs when OneOf is non-empty.
//
// A struct is either a leaf (its Fields become schema properties) or a
// polymorphic base (its OneOf becomes a oneOf reference list), never both
// in the emitted schema. For a base, Fields only document the shared shape.
type StructInfo struct {
	// Name is globally unique within the specification; it is the
	// definitions-table key.
	Name string `json:"name" validate:"required"`

	// Fields in declaration order.
	Fields []FieldInfo `json:"fields" validate:"dive"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`

	// OneOf lists the concrete subtype signatures in declaration order.
	// Empty unless this struct is a polymorphic base.
	OneOf []TypeSignature `json:"oneOf,omitempty"`

	// Discriminator is present iff OneOf is non-empty.
	Discriminator *DiscriminatorInfo `json:"discriminator,omitempty"`
}

// TypeName returns the struct's name.
func (s *StructInfo) TypeName() string { return s.Name }

// IsPolymorphic reports whether this struct is a discriminated-union base.
func (s *StructInfo) IsPolymorphic() bool { return len(s.OneOf) > 0 }

func (*StructInfo) sealed() {}

// EnumValue is a single named enum constant.
type EnumValue struct {
	Name string `json:"name" validate:"required"`
}

// EnumInfo describes a named enumeration.
type EnumInfo struct {
	// Name is unique within the specification.
	Name string `json:"name" validate:"required"`

	// Values in declaration order.
	Values []EnumValue `json:"values" validate:"dive"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`
}

// TypeName returns the enum's name.
func (e *EnumInfo) TypeName() string { return e.Name }

func (*EnumInfo) sealed() {}
