package docspec

// FieldRequirement indicates whether a field must be present.
type FieldRequirement int

const (
	Optional FieldRequirement = iota
	Required
)

// String returns the string representation of the requirement.
func (r FieldRequirement) String() string {
	switch r {
	case Optional:
		return "Optional"
	case Required:
		return "Required"
	default:
		return "Unknown"
	}
}

// FieldLocation classifies where a method parameter is transmitted.
// Only Body and Unspecified parameters contribute to the generated
// request-body schema; the other locations belong to the transport binding.
type FieldLocation int

const (
	Unspecified FieldLocation = iota
	Body
	Query
	Header
	Path
)

// String returns the string representation of the location.
func (l FieldLocation) String() string {
	switch l {
	case Unspecified:
		return "Unspecified"
	case Body:
		return "Body"
	case Query:
		return "Query"
	case Header:
		return "Header"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// FieldInfo describes a single field of a struct or a method parameter.
// Values are immutable once constructed.
type FieldInfo struct {
	// Name is the field name, unique within its owning struct or method.
	Name string `json:"name" validate:"required"`

	// Type is the field's type signature.
	Type TypeSignature `json:"typeSignature"`

	// Requirement indicates whether the field must be present.
	Requirement FieldRequirement `json:"requirement"`

	// Location classifies where the field is transmitted.
	Location FieldLocation `json:"location"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`
}

// Field returns a FieldInfo with the given name and type signature.
func Field(name string, sig TypeSignature) FieldInfo {
	return FieldInfo{Name: name, Type: sig}
}
