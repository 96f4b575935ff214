package provider

import (
	"reflect"
	"strings"
	"time"

	"github.com/docspec/docspec"
)

// ReflectionResolver performs generic structural introspection of a type
// descriptor using runtime reflection, independent of any polymorphism
// metadata. It is always last in the default chain.
//
// Reflection cannot enumerate Go constants, so enum descriptions are only
// produced for types that implement docspec.Enumerable.
type ReflectionResolver struct{}

// Resolve implements Resolver.
func (ReflectionResolver) Resolve(descriptor any) docspec.NamedTypeInfo {
	t := descriptorType(descriptor)
	if t == nil {
		return nil
	}

	if e, ok := metadata(descriptor, t, enumerableIface).(docspec.Enumerable); ok {
		values := make([]docspec.EnumValue, 0, len(e.EnumValues()))
		for _, name := range e.EnumValues() {
			values = append(values, docspec.EnumValue{Name: name})
		}
		return &docspec.EnumInfo{
			Name:        qualifiedName(t),
			Values:      values,
			Description: typeDescription(descriptor, t),
		}
	}

	if t.Kind() != reflect.Struct {
		return nil
	}
	return &docspec.StructInfo{
		Name:        qualifiedName(t),
		Fields:      structFields(t),
		Description: typeDescription(descriptor, t),
	}
}

var (
	polymorphicIface = reflect.TypeOf((*docspec.Polymorphic)(nil)).Elem()
	enumerableIface  = reflect.TypeOf((*docspec.Enumerable)(nil)).Elem()
	describedIface   = reflect.TypeOf((*docspec.Described)(nil)).Elem()

	timeType = reflect.TypeOf(time.Time{})
)

// descriptorType normalizes a descriptor to its underlying non-pointer
// reflect.Type. Returns nil for nil or unusable descriptors.
func descriptorType(descriptor any) reflect.Type {
	var t reflect.Type
	switch d := descriptor.(type) {
	case nil:
		return nil
	case reflect.Type:
		t = d
	default:
		t = reflect.TypeOf(descriptor)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// metadata returns a value usable for calling a declarative-metadata
// interface: the descriptor itself if its dynamic type implements iface,
// otherwise a zero value of t when t implements iface on its value or
// pointer receiver. Returns nil if the metadata is absent.
func metadata(descriptor any, t reflect.Type, iface reflect.Type) any {
	if descriptor != nil {
		if dt := reflect.TypeOf(descriptor); dt != nil && dt.Implements(iface) {
			return descriptor
		}
	}
	if t == nil || t.Kind() == reflect.Interface {
		return nil
	}
	if t.Implements(iface) {
		return reflect.Zero(t).Interface()
	}
	if reflect.PointerTo(t).Implements(iface) {
		return reflect.New(t).Interface()
	}
	return nil
}

// typeDescription returns the optional description metadata of a type, or
// an empty string when absent.
func typeDescription(descriptor any, t reflect.Type) string {
	if d, ok := metadata(descriptor, t, describedIface).(docspec.Described); ok {
		return d.TypeDescription()
	}
	return ""
}

// structFields extracts field descriptions from a struct type in
// declaration order, honoring json tags. Embedded structs are flattened
// into the owner, matching their JSON serialization.
func structFields(t reflect.Type) []docspec.FieldInfo {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var fields []docspec.FieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, omitempty := parseJSONTag(f.Tag.Get("json"))
		if name == "-" {
			continue
		}

		if f.Anonymous && name == "" {
			embedded := f.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				fields = append(fields, structFields(embedded)...)
				continue
			}
		}

		if name == "" {
			name = f.Name
		}
		field := docspec.Field(name, toTypeSignature(f.Type))
		if !omitempty && f.Type.Kind() != reflect.Pointer {
			field.Requirement = docspec.Required
		}
		if doc := f.Tag.Get("doc"); doc != "" {
			field.Description = doc
		}
		fields = append(fields, field)
	}
	return fields
}

// parseJSONTag returns the name part of a json struct tag and whether
// omitempty or omitzero was set.
func parseJSONTag(tag string) (name string, omitempty bool) {
	if tag == "" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty
}

// toTypeSignature maps a Go type to its specification type signature.
func toTypeSignature(t reflect.Type) docspec.TypeSignature {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == timeType {
		return docspec.BaseType("string")
	}
	if t.Kind() != reflect.Interface && metadata(nil, t, enumerableIface) != nil {
		return docspec.EnumType(qualifiedName(t))
	}

	switch t.Kind() {
	case reflect.Bool:
		return docspec.BaseType("boolean")
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return docspec.BaseType("int32")
	case reflect.Int, reflect.Int64:
		return docspec.BaseType("int64")
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return docspec.BaseType("uint32")
	case reflect.Uint, reflect.Uint64:
		return docspec.BaseType("uint64")
	case reflect.Float32:
		return docspec.BaseType("float")
	case reflect.Float64:
		return docspec.BaseType("double")
	case reflect.String:
		return docspec.BaseType("string")
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return docspec.BaseType("binary")
		}
		return docspec.ListType(toTypeSignature(t.Elem()))
	case reflect.Map:
		return docspec.MapType(toTypeSignature(t.Key()), toTypeSignature(t.Elem()))
	case reflect.Struct:
		return docspec.StructType(qualifiedName(t))
	default:
		return docspec.UnresolvedType(t.String())
	}
}

// qualifiedName returns the definitions-table identity of a type: the full
// package path plus the type name, with path separators folded to "." so
// the name stays usable inside a "#/definitions/<name>" JSON pointer.
func qualifiedName(t reflect.Type) string {
	name := t.Name()
	if name == "" {
		return sanitizeTypeName(t.String())
	}
	if pkg := t.PkgPath(); pkg != "" {
		return strings.ReplaceAll(pkg, "/", ".") + "." + sanitizeTypeName(name)
	}
	return sanitizeTypeName(name)
}

// sanitizeTypeName rewrites generic instantiation syntax into identifier-safe
// form, e.g. "Response[pkg.User]" becomes "Response_pkg.User".
func sanitizeTypeName(name string) string {
	result := strings.ReplaceAll(name, "/", ".")
	result = strings.ReplaceAll(result, "[", "_")
	result = strings.ReplaceAll(result, "]", "")
	result = strings.ReplaceAll(result, ",", "_")
	result = strings.ReplaceAll(result, " ", "")
	result = strings.ReplaceAll(result, "*", "Ptr")
	return result
}
