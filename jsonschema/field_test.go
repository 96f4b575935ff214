package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/docspec/docspec"
)

func TestSchemaType(t *testing.T) {
	tests := []struct {
		name string
		sig  docspec.TypeSignature
		want string
	}{
		{"bool", docspec.BaseType("boolean"), "boolean"},
		{"go bool", docspec.BaseType("bool"), "boolean"},
		{"short", docspec.BaseType("short"), "number"},
		{"float", docspec.BaseType("float"), "number"},
		{"double", docspec.BaseType("double"), "number"},
		{"int", docspec.BaseType("int"), "integer"},
		{"i64", docspec.BaseType("i64"), "integer"},
		{"long", docspec.BaseType("long"), "integer"},
		{"uint32", docspec.BaseType("uint32"), "integer"},
		{"sfixed64", docspec.BaseType("sfixed64"), "integer"},
		{"binary", docspec.BaseType("binary"), "string"},
		{"bytes", docspec.BaseType("bytes"), "string"},
		{"string", docspec.BaseType("string"), "string"},
		{"case insensitive", docspec.BaseType("STRING"), "string"},
		{"mixed case int", docspec.BaseType("Int64"), "integer"},
		{"unknown base", docspec.BaseType("duration"), "object"},
		{"enum", docspec.EnumType("Status"), "string"},
		{"list", docspec.ListType(docspec.BaseType("int")), "array"},
		{"set", docspec.SetType(docspec.BaseType("int")), "array"},
		{"repeated", docspec.IterableType("repeated", docspec.BaseType("int")), "array"},
		{"unknown iterable", docspec.IterableType("stream", docspec.BaseType("int")), "object"},
		{"map", docspec.MapType(docspec.BaseType("string"), docspec.BaseType("int")), "object"},
		{"unresolved", docspec.UnresolvedType("T"), "object"},
		{"unresolved with known name", docspec.UnresolvedType("int"), "integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schemaType(tt.sig); got != tt.want {
				t.Errorf("schemaType(%v) = %q, want %q", tt.sig, got, tt.want)
			}
		})
	}
}

func TestFieldSchema_StructRef(t *testing.T) {
	schema := fieldSchema(docspec.Field("owner", docspec.StructType("User")))
	if got, _ := schema.Get("$ref"); got != "#/definitions/User" {
		t.Errorf("$ref = %v", got)
	}
	if _, ok := schema.Get("type"); ok {
		t.Error("$ref schema should not carry a type")
	}
}

func TestFieldSchema_EnumRef(t *testing.T) {
	schema := fieldSchema(docspec.Field("status", docspec.EnumType("Status")))
	if got, _ := schema.Get("$ref"); got != "#/definitions/Status" {
		t.Errorf("$ref = %v", got)
	}
}

func TestFieldSchema_IterableOfString(t *testing.T) {
	schema := fieldSchema(docspec.Field("tags", docspec.ListType(docspec.BaseType("string"))))

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"array","items":{"type":"string"}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestFieldSchema_NestedIterable(t *testing.T) {
	schema := fieldSchema(docspec.Field("matrix",
		docspec.ListType(docspec.ListType(docspec.BaseType("double")))))

	items := getObject(t, schema, "items")
	if got := getString(t, items, "type"); got != "array" {
		t.Errorf("inner type = %q", got)
	}
	inner := getObject(t, items, "items")
	if got := getString(t, inner, "type"); got != "number" {
		t.Errorf("innermost type = %q", got)
	}
}

func TestFieldSchema_MapAdditionalProperties(t *testing.T) {
	schema := fieldSchema(docspec.Field("attrs",
		docspec.MapType(docspec.BaseType("string"), docspec.StructType("Attr"))))

	if got := getString(t, schema, "type"); got != "object" {
		t.Errorf("type = %q", got)
	}
	ap := getObject(t, schema, "additionalProperties")
	if got := getString(t, ap, "$ref"); got != "#/definitions/Attr" {
		t.Errorf("additionalProperties.$ref = %q", got)
	}
}

func TestFieldSchema_DescriptionComesFirst(t *testing.T) {
	field := docspec.Field("age", docspec.BaseType("int"))
	field.Description = "age in years"

	data, err := json.Marshal(fieldSchema(field))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"description":"age in years","type":"integer"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
