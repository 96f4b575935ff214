package provider

import (
	"reflect"
	"testing"
	"time"

	"github.com/docspec/docspec"
)

type orderStatus string

func (orderStatus) EnumValues() []string {
	return []string{"PLACED", "SHIPPED", "DELIVERED"}
}

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type order struct {
	ID        int64             `json:"id"`
	Status    orderStatus       `json:"status"`
	Note      string            `json:"note,omitempty"`
	Shipping  *address          `json:"shipping"`
	Items     []string          `json:"items"`
	Attrs     map[string]int    `json:"attrs"`
	Placed    time.Time         `json:"placed"`
	Payload   []byte            `json:"payload"`
	Ignored   string            `json:"-"`
	internals string
}

type describedOrder struct {
	ID int64 `json:"id"`
}

func (describedOrder) TypeDescription() string { return "an order" }

type base struct {
	Common string `json:"common"`
}

type wrapper struct {
	base
	Extra string `json:"extra"`
}

func findField(t *testing.T, fields []docspec.FieldInfo, name string) docspec.FieldInfo {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found in %v", name, fields)
	return docspec.FieldInfo{}
}

func TestReflectionResolver_Struct(t *testing.T) {
	info := ReflectionResolver{}.Resolve(order{})
	st, ok := info.(*docspec.StructInfo)
	if !ok {
		t.Fatalf("Resolve = %T, want *StructInfo", info)
	}

	for _, f := range st.Fields {
		if f.Name == "Ignored" || f.Name == "-" || f.Name == "internals" {
			t.Errorf("field %q should be skipped", f.Name)
		}
	}

	id := findField(t, st.Fields, "id")
	if !id.Type.Equal(docspec.BaseType("int64")) || id.Requirement != docspec.Required {
		t.Errorf("id = %+v", id)
	}

	status := findField(t, st.Fields, "status")
	if status.Type.Type != docspec.TypeEnum {
		t.Errorf("status type = %v, want enum", status.Type)
	}

	note := findField(t, st.Fields, "note")
	if note.Requirement != docspec.Optional {
		t.Error("omitempty field should be optional")
	}

	shipping := findField(t, st.Fields, "shipping")
	if shipping.Requirement != docspec.Optional {
		t.Error("pointer field should be optional")
	}
	if shipping.Type.Type != docspec.TypeStruct {
		t.Errorf("shipping type = %v, want struct", shipping.Type)
	}

	items := findField(t, st.Fields, "items")
	if items.Type.Type != docspec.TypeIterable || !items.Type.ElementType().Equal(docspec.BaseType("string")) {
		t.Errorf("items type = %v", items.Type)
	}

	attrs := findField(t, st.Fields, "attrs")
	if attrs.Type.Type != docspec.TypeMap {
		t.Errorf("attrs type = %v", attrs.Type)
	}

	placed := findField(t, st.Fields, "placed")
	if !placed.Type.Equal(docspec.BaseType("string")) {
		t.Errorf("time.Time should map to string, got %v", placed.Type)
	}

	payload := findField(t, st.Fields, "payload")
	if !payload.Type.Equal(docspec.BaseType("binary")) {
		t.Errorf("[]byte should map to binary, got %v", payload.Type)
	}
}

func TestReflectionResolver_Enum(t *testing.T) {
	info := ReflectionResolver{}.Resolve(orderStatus(""))
	en, ok := info.(*docspec.EnumInfo)
	if !ok {
		t.Fatalf("Resolve = %T, want *EnumInfo", info)
	}
	want := []string{"PLACED", "SHIPPED", "DELIVERED"}
	if len(en.Values) != len(want) {
		t.Fatalf("Values = %v", en.Values)
	}
	for i, v := range en.Values {
		if v.Name != want[i] {
			t.Errorf("Values[%d] = %q, want %q", i, v.Name, want[i])
		}
	}
}

func TestReflectionResolver_Description(t *testing.T) {
	info := ReflectionResolver{}.Resolve(describedOrder{})
	st := info.(*docspec.StructInfo)
	if st.Description != "an order" {
		t.Errorf("Description = %q", st.Description)
	}
}

func TestReflectionResolver_PointerAndTypeDescriptors(t *testing.T) {
	fromValue := ReflectionResolver{}.Resolve(address{})
	fromPointer := ReflectionResolver{}.Resolve(&address{})
	fromType := ReflectionResolver{}.Resolve(reflect.TypeOf(address{}))

	for i, info := range []docspec.NamedTypeInfo{fromValue, fromPointer, fromType} {
		st, ok := info.(*docspec.StructInfo)
		if !ok {
			t.Fatalf("descriptor form %d: Resolve = %T", i, info)
		}
		if st.TypeName() != fromValue.TypeName() {
			t.Errorf("descriptor form %d: name = %q, want %q", i, st.TypeName(), fromValue.TypeName())
		}
	}
}

func TestReflectionResolver_NonStruct(t *testing.T) {
	for _, descriptor := range []any{42, "s", []int{1}, map[string]int{}} {
		if info := (ReflectionResolver{}).Resolve(descriptor); info != nil {
			t.Errorf("Resolve(%T) = %v, want nil", descriptor, info)
		}
	}
}

func TestStructFields_EmbeddedFlattened(t *testing.T) {
	fields := structFields(reflect.TypeOf(wrapper{}))
	if len(fields) != 2 {
		t.Fatalf("fields = %v", fields)
	}
	if fields[0].Name != "common" || fields[1].Name != "extra" {
		t.Errorf("field order = %v", fields)
	}
}

func TestStructFields_DocTag(t *testing.T) {
	type tagged struct {
		Age int `json:"age" doc:"age in years"`
	}
	fields := structFields(reflect.TypeOf(tagged{}))
	if fields[0].Description != "age in years" {
		t.Errorf("Description = %q", fields[0].Description)
	}
}

func TestQualifiedName(t *testing.T) {
	name := qualifiedName(reflect.TypeOf(address{}))
	want := "github.com.docspec.docspec.provider.address"
	if name != want {
		t.Errorf("qualifiedName = %q, want %q", name, want)
	}
}

func TestSanitizeTypeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Response[pkg.User]", "Response_pkg.User"},
		{"Pair[a.X, b.Y]", "Pair_a.X_b.Y"},
		{"*Node", "PtrNode"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := sanitizeTypeName(tt.in); got != tt.want {
			t.Errorf("sanitizeTypeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToTypeSignature_Primitives(t *testing.T) {
	tests := []struct {
		value any
		want  docspec.TypeSignature
	}{
		{true, docspec.BaseType("boolean")},
		{int8(0), docspec.BaseType("int32")},
		{int32(0), docspec.BaseType("int32")},
		{int(0), docspec.BaseType("int64")},
		{int64(0), docspec.BaseType("int64")},
		{uint16(0), docspec.BaseType("uint32")},
		{uint64(0), docspec.BaseType("uint64")},
		{float32(0), docspec.BaseType("float")},
		{float64(0), docspec.BaseType("double")},
		{"", docspec.BaseType("string")},
	}
	for _, tt := range tests {
		if got := toTypeSignature(reflect.TypeOf(tt.value)); !got.Equal(tt.want) {
			t.Errorf("toTypeSignature(%T) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
