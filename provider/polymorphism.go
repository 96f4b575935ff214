package provider

import (
	"github.com/docspec/docspec"
)

// PolymorphismResolver resolves types that declare discriminated-union
// metadata through the docspec.Polymorphic interface: a discriminator
// property name plus an ordered list of concrete subtype descriptors.
//
// If either piece of metadata is absent the resolver returns nil and
// resolution falls through to the next resolver in the chain; it never
// guesses. The produced StructInfo is a polymorphic base: its oneOf lists
// the subtypes in declaration order and its fields only document the base
// type's shared shape.
type PolymorphismResolver struct{}

// Resolve implements Resolver.
func (PolymorphismResolver) Resolve(descriptor any) docspec.NamedTypeInfo {
	t := descriptorType(descriptor)
	meta, ok := metadata(descriptor, t, polymorphicIface).(docspec.Polymorphic)
	if !ok {
		return nil
	}

	propertyName := meta.DiscriminatorProperty()
	subTypes := meta.SubTypes()
	if propertyName == "" || len(subTypes) == 0 {
		return nil
	}

	oneOf := make([]docspec.TypeSignature, 0, len(subTypes))
	for _, sub := range subTypes {
		st := descriptorType(sub)
		if st == nil {
			continue
		}
		oneOf = append(oneOf, docspec.StructType(qualifiedName(st)))
	}
	if len(oneOf) == 0 {
		return nil
	}

	return &docspec.StructInfo{
		Name:          qualifiedName(t),
		Fields:        structFields(t),
		Description:   typeDescription(descriptor, t),
		OneOf:         oneOf,
		Discriminator: &docspec.DiscriminatorInfo{PropertyName: propertyName},
	}
}
