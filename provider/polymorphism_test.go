package provider

import (
	"strings"
	"testing"

	"github.com/docspec/docspec"
)

type dog struct {
	Species string `json:"species"`
	Bark    bool   `json:"bark"`
}

type cat struct {
	Species string `json:"species"`
	Purr    bool   `json:"purr"`
}

type animal struct {
	Species string `json:"species"`
}

func (animal) DiscriminatorProperty() string { return "species" }
func (animal) SubTypes() []any               { return []any{dog{}, cat{}} }

type noSubTypes struct{}

func (noSubTypes) DiscriminatorProperty() string { return "kind" }
func (noSubTypes) SubTypes() []any               { return nil }

type noProperty struct{}

func (noProperty) DiscriminatorProperty() string { return "" }
func (noProperty) SubTypes() []any               { return []any{dog{}} }

func TestPolymorphismResolver_Complete(t *testing.T) {
	info := PolymorphismResolver{}.Resolve(animal{})
	st, ok := info.(*docspec.StructInfo)
	if !ok {
		t.Fatalf("Resolve = %T, want *StructInfo", info)
	}

	if !st.IsPolymorphic() {
		t.Fatal("resolved base should be polymorphic")
	}
	if st.Discriminator == nil || st.Discriminator.PropertyName != "species" {
		t.Errorf("Discriminator = %+v", st.Discriminator)
	}

	if len(st.OneOf) != 2 {
		t.Fatalf("OneOf = %v", st.OneOf)
	}
	if !strings.HasSuffix(st.OneOf[0].Name, ".dog") || !strings.HasSuffix(st.OneOf[1].Name, ".cat") {
		t.Errorf("OneOf order = %v, want dog then cat", st.OneOf)
	}

	// The base still documents its own shared shape.
	if len(st.Fields) != 1 || st.Fields[0].Name != "species" {
		t.Errorf("Fields = %v", st.Fields)
	}
}

func TestPolymorphismResolver_PointerDescriptor(t *testing.T) {
	info := PolymorphismResolver{}.Resolve(&animal{})
	if info == nil {
		t.Fatal("pointer descriptor should resolve")
	}
	if !info.(*docspec.StructInfo).IsPolymorphic() {
		t.Error("pointer descriptor should resolve as polymorphic")
	}
}

func TestPolymorphismResolver_IncompleteMetadata(t *testing.T) {
	tests := []struct {
		name       string
		descriptor any
	}{
		{"no metadata at all", dog{}},
		{"empty subtype list", noSubTypes{}},
		{"empty property name", noProperty{}},
		{"nil descriptor", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if info := (PolymorphismResolver{}).Resolve(tt.descriptor); info != nil {
				t.Errorf("Resolve = %v, want nil", info)
			}
		})
	}
}

func TestPolymorphismResolver_LeavesResolveGenerically(t *testing.T) {
	// In the default chain a subtype carries no polymorphism metadata and
	// falls through to structural introspection.
	info := Default().Resolve(dog{})
	st, ok := info.(*docspec.StructInfo)
	if !ok {
		t.Fatalf("Resolve = %T, want *StructInfo", info)
	}
	if st.IsPolymorphic() {
		t.Error("subtype must not inherit the base's metadata")
	}
	if len(st.Fields) != 2 {
		t.Errorf("Fields = %v", st.Fields)
	}
}
