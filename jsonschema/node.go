// Package jsonschema generates JSON Schema documents from a
// docspec.ServiceSpecification: one self-contained document per service
// method, each embedding a shared, name-keyed definitions table that makes
// recursive type graphs representable through $ref pointers.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectNode is a JSON object that preserves key insertion order.
// Schema output is defined in declaration order, so plain Go maps
// (which marshal alphabetically) cannot carry it.
type ObjectNode struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty ObjectNode.
func NewObject() *ObjectNode {
	return &ObjectNode{values: make(map[string]any)}
}

// Put sets a key to a value, keeping the key's original position if it was
// already present. Returns the node for chaining.
func (o *ObjectNode) Put(key string, value any) *ObjectNode {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value for a key and whether it was present.
func (o *ObjectNode) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *ObjectNode) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *ObjectNode) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (o *ObjectNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ArrayNode is an ordered JSON array.
type ArrayNode struct {
	items []any
}

// NewArray returns an empty ArrayNode.
func NewArray() *ArrayNode {
	return &ArrayNode{}
}

// Add appends a value. Returns the node for chaining.
func (a *ArrayNode) Add(value any) *ArrayNode {
	a.items = append(a.items, value)
	return a
}

// Len returns the number of elements.
func (a *ArrayNode) Len() int { return len(a.items) }

// Items returns the elements in order.
func (a *ArrayNode) Items() []any {
	items := make([]any, len(a.items))
	copy(items, a.items)
	return items
}

// MarshalJSON implements json.Marshaler.
func (a *ArrayNode) MarshalJSON() ([]byte, error) {
	if a.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.items)
}
