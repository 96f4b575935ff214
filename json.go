package docspec

import (
	"encoding/json"
	"fmt"
)

// JSON serialization for the specification model. Kinds, requirements and
// locations are serialized as lowercase strings so specification files are
// readable and stable across releases.

// MarshalJSON implements json.Marshaler for TypeSignature.
func (s TypeSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type           string          `json:"type"`
		Name           string          `json:"name"`
		TypeParameters []TypeSignature `json:"typeParameters,omitempty"`
	}{
		Type:           signatureTypeNames[s.Type],
		Name:           s.Name,
		TypeParameters: s.TypeParameters,
	})
}

// UnmarshalJSON implements json.Unmarshaler for TypeSignature.
func (s *TypeSignature) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type           string          `json:"type"`
		Name           string          `json:"name"`
		TypeParameters []TypeSignature `json:"typeParameters"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	typ, ok := signatureTypesByName[aux.Type]
	if !ok {
		return fmt.Errorf("unknown type signature kind: %q", aux.Type)
	}
	s.Type = typ
	s.Name = aux.Name
	s.TypeParameters = aux.TypeParameters
	return nil
}

var signatureTypeNames = map[TypeSignatureType]string{
	TypeBase:       "base",
	TypeStruct:     "struct",
	TypeEnum:       "enum",
	TypeIterable:   "iterable",
	TypeMap:        "map",
	TypeUnresolved: "unresolved",
}

var signatureTypesByName = map[string]TypeSignatureType{
	"base":       TypeBase,
	"struct":     TypeStruct,
	"enum":       TypeEnum,
	"iterable":   TypeIterable,
	"map":        TypeMap,
	"unresolved": TypeUnresolved,
}

// MarshalJSON implements json.Marshaler for FieldRequirement.
func (r FieldRequirement) MarshalJSON() ([]byte, error) {
	switch r {
	case Required:
		return json.Marshal("required")
	default:
		return json.Marshal("optional")
	}
}

// UnmarshalJSON implements json.Unmarshaler for FieldRequirement.
func (r *FieldRequirement) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "required":
		*r = Required
	case "optional", "":
		*r = Optional
	default:
		return fmt.Errorf("unknown field requirement: %q", name)
	}
	return nil
}

var locationNames = map[FieldLocation]string{
	Unspecified: "unspecified",
	Body:        "body",
	Query:       "query",
	Header:      "header",
	Path:        "path",
}

var locationsByName = map[string]FieldLocation{
	"unspecified": Unspecified,
	"body":        Body,
	"query":       Query,
	"header":      Header,
	"path":        Path,
}

// MarshalJSON implements json.Marshaler for FieldLocation.
func (l FieldLocation) MarshalJSON() ([]byte, error) {
	name, ok := locationNames[l]
	if !ok {
		name = "unspecified"
	}
	return json.Marshal(name)
}

// UnmarshalJSON implements json.Unmarshaler for FieldLocation.
func (l *FieldLocation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == "" {
		*l = Unspecified
		return nil
	}
	loc, ok := locationsByName[name]
	if !ok {
		return fmt.Errorf("unknown field location: %q", name)
	}
	*l = loc
	return nil
}
