package jsonschema

import (
	"github.com/docspec/docspec"
)

// assembleDefinitions builds the shared, name-keyed definitions table in a
// single flat pass over the specification's structs, exceptions and enums.
// It never recurses into field graphs: a nested struct or enum appears at
// its use site as a $ref, which is what makes self-referential and mutually
// recursive type graphs terminate.
func assembleDefinitions(spec *docspec.ServiceSpecification) *ObjectNode {
	definitions := NewObject()
	for i := range spec.Structs {
		st := &spec.Structs[i]
		definitions.Put(st.Name, structSchema(st))
	}
	for i := range spec.Exceptions {
		st := &spec.Exceptions[i]
		definitions.Put(st.Name, structSchema(st))
	}
	for i := range spec.Enums {
		en := &spec.Enums[i]
		definitions.Put(en.Name, enumSchema(en))
	}
	return definitions
}

// structSchema emits a single struct definition. A polymorphic base emits
// oneOf + discriminator and no properties; a leaf emits properties +
// required and no oneOf.
func structSchema(st *docspec.StructInfo) *ObjectNode {
	schema := NewObject()
	schema.Put("type", "object")
	schema.Put("title", st.Name)
	if st.Description != "" {
		schema.Put("description", st.Description)
	}

	if st.IsPolymorphic() {
		oneOf := NewArray()
		for _, sub := range st.OneOf {
			oneOf.Add(NewObject().Put("$ref", "#/definitions/"+sub.Name))
		}
		schema.Put("oneOf", oneOf)
		if st.Discriminator != nil {
			schema.Put("discriminator",
				NewObject().Put("propertyName", st.Discriminator.PropertyName))
		}
		return schema
	}

	properties := NewObject()
	required := NewArray()
	for _, field := range st.Fields {
		properties.Put(field.Name, fieldSchema(field))
		if field.Requirement == docspec.Required {
			required.Add(field.Name)
		}
	}
	if properties.Len() > 0 {
		schema.Put("properties", properties)
	}
	if required.Len() > 0 {
		schema.Put("required", required)
	}
	return schema
}

// enumSchema emits a single enum definition.
func enumSchema(en *docspec.EnumInfo) *ObjectNode {
	schema := NewObject()
	schema.Put("type", "string")
	schema.Put("title", en.Name)
	if en.Description != "" {
		schema.Put("description", en.Description)
	}
	values := NewArray()
	for _, v := range en.Values {
		values.Add(v.Name)
	}
	schema.Put("enum", values)
	return schema
}
