package jsonschema

import (
	"strings"

	"github.com/docspec/docspec"
)

// fieldSchema renders a single field's type into a schema fragment.
// Struct and enum types become $ref pointers into the definitions table —
// never inline expansions — so a struct may reference itself or a type that
// declares it. Iterables and maps recurse one wrapper level at a time.
func fieldSchema(field docspec.FieldInfo) *ObjectNode {
	schema := NewObject()
	if field.Description != "" {
		schema.Put("description", field.Description)
	}

	sig := field.Type
	switch sig.Type {
	case docspec.TypeStruct, docspec.TypeEnum:
		schema.Put("$ref", "#/definitions/"+sig.Name)
	case docspec.TypeIterable:
		schema.Put("type", "array")
		schema.Put("items", fieldSchema(docspec.Field("items", sig.ElementType())))
	case docspec.TypeMap:
		schema.Put("type", "object")
		schema.Put("additionalProperties",
			fieldSchema(docspec.Field("additionalProperties", sig.ValueType())))
	default:
		schema.Put("type", schemaType(sig))
	}
	return schema
}

// schemaType maps a type signature to a JSON Schema primitive type name.
// Unknown names degrade to "object" so novel or custom type names never
// fail generation.
func schemaType(sig docspec.TypeSignature) string {
	if sig.Type == docspec.TypeEnum {
		return "string"
	}

	if sig.Type == docspec.TypeIterable {
		switch strings.ToLower(sig.Name) {
		case "repeated", "list", "array", "set":
			return "array"
		default:
			return "object"
		}
	}

	if sig.Type == docspec.TypeMap {
		return "object"
	}

	if sig.Type == docspec.TypeBase || sig.Type == docspec.TypeUnresolved {
		switch strings.ToLower(sig.Name) {
		case "boolean", "bool":
			return "boolean"
		case "short", "number", "float", "double":
			return "number"
		case "i", "i8", "i16", "i32", "i64",
			"integer", "int", "l32", "l64", "long", "long32", "long64",
			"int32", "int64", "uint32", "uint64", "sint32", "sint64",
			"fixed32", "fixed64", "sfixed32", "sfixed64":
			return "integer"
		case "binary", "byte", "bytes", "string":
			return "string"
		default:
			return "object"
		}
	}

	return "object"
}
