// Package provider implements the descriptive-type-info resolver chain:
// given an opaque type descriptor (a value, a pointer, or a reflect.Type),
// a resolver produces the struct or enum description that becomes part of a
// docspec.ServiceSpecification. Resolvers compose into an ordered chain
// with first-non-nil-wins short-circuit evaluation.
package provider

import "github.com/docspec/docspec"

// Resolver produces a struct or enum description for a type descriptor.
// Implementations return nil when they cannot classify the descriptor,
// deferring to the next resolver in the chain. Resolvers must not mutate
// the descriptor.
type Resolver interface {
	Resolve(descriptor any) docspec.NamedTypeInfo
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(descriptor any) docspec.NamedTypeInfo

// Resolve calls f.
func (f ResolverFunc) Resolve(descriptor any) docspec.NamedTypeInfo {
	return f(descriptor)
}

// Chain is an ordered list of resolvers. Resolution tries each resolver in
// order and returns the first non-nil result; order is significant and
// caller-controlled.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(descriptor any) docspec.NamedTypeInfo {
	for _, r := range c {
		if info := r.Resolve(descriptor); info != nil {
			return info
		}
	}
	return nil
}

// OrElse returns a chain that consults c first and next only if c
// returned nil.
func (c Chain) OrElse(next Resolver) Chain {
	out := make(Chain, 0, len(c)+1)
	out = append(out, c...)
	return append(out, next)
}

// Default returns the standard chain: polymorphism metadata first, generic
// structural introspection as the fallback.
func Default() Chain {
	return Chain{PolymorphismResolver{}, ReflectionResolver{}}
}
