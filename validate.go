package docspec

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes a structural issue in a specification.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the specification for structural issues: missing required
// names, duplicate definition names, and struct/enum references that do not
// resolve to a definition. Returns all problems found, not just the first.
//
// Generation itself never requires a valid specification — an unresolved
// reference degrades to a dangling $ref and an unknown base type to
// "object" — so validation is opt-in for callers that want hard errors.
func (s *ServiceSpecification) Validate() []error {
	var errs []error

	if err := validate.Struct(s); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, ve := range valErrs {
				errs = append(errs, &ValidationError{
					Code:    "invalid_field",
					Message: ve.Namespace() + " failed validation rule " + ve.Tag(),
				})
			}
		} else {
			errs = append(errs, err)
		}
	}

	names := make(map[string]bool)
	addName := func(kind, name string) {
		if name == "" {
			return
		}
		if names[name] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate " + kind + " name: " + name,
			})
		}
		names[name] = true
	}
	for i := range s.Structs {
		addName("struct", s.Structs[i].Name)
	}
	for i := range s.Exceptions {
		addName("exception", s.Exceptions[i].Name)
	}
	for i := range s.Enums {
		addName("enum", s.Enums[i].Name)
	}

	var checkSignature func(sig TypeSignature, context string)
	checkSignature = func(sig TypeSignature, context string) {
		switch sig.Type {
		case TypeStruct:
			if s.FindStruct(sig.Name) == nil {
				errs = append(errs, &ValidationError{
					Code:    "missing_type_reference",
					Message: context + " references unknown struct: " + sig.Name,
				})
			}
		case TypeEnum:
			if s.FindEnum(sig.Name) == nil {
				errs = append(errs, &ValidationError{
					Code:    "missing_type_reference",
					Message: context + " references unknown enum: " + sig.Name,
				})
			}
		}
		for _, p := range sig.TypeParameters {
			checkSignature(p, context)
		}
	}

	checkStruct := func(st *StructInfo) {
		for _, f := range st.Fields {
			checkSignature(f.Type, "struct "+st.Name+" field "+f.Name)
		}
		for _, sub := range st.OneOf {
			checkSignature(sub, "struct "+st.Name+" oneOf")
		}
		if st.IsPolymorphic() && st.Discriminator == nil {
			errs = append(errs, &ValidationError{
				Code:    "missing_discriminator",
				Message: "polymorphic struct " + st.Name + " has no discriminator",
			})
		}
	}
	for i := range s.Structs {
		checkStruct(&s.Structs[i])
	}
	for i := range s.Exceptions {
		checkStruct(&s.Exceptions[i])
	}

	for i := range s.Services {
		svc := &s.Services[i]
		methodNames := make(map[string]bool)
		for j := range svc.Methods {
			m := &svc.Methods[j]
			key := m.ID()
			if methodNames[key] {
				errs = append(errs, &ValidationError{
					Code:    "duplicate_method",
					Message: "duplicate method in service " + svc.Name + ": " + key,
				})
			}
			methodNames[key] = true
			for _, p := range m.Parameters {
				checkSignature(p.Type, "method "+key+" parameter "+p.Name)
			}
		}
	}

	return errs
}
