package jsonschema

import (
	"errors"

	"github.com/docspec/docspec"
)

// Generate produces one JSON Schema document per method across every
// service in the specification, in service-then-method declaration order.
// Each document embeds the full shared definitions table so it is
// independently valid.
//
// Generation is a pure, synchronous transformation: the specification is
// only read, the returned documents are freshly allocated, and distinct
// goroutines may call Generate concurrently on the same specification.
func Generate(spec *docspec.ServiceSpecification) ([]*ObjectNode, error) {
	if spec == nil {
		return nil, errors.New("jsonschema: specification is nil")
	}

	definitions := assembleDefinitions(spec)

	var documents []*ObjectNode
	for i := range spec.Services {
		svc := &spec.Services[i]
		for j := range svc.Methods {
			documents = append(documents, methodSchema(&svc.Methods[j], definitions))
		}
	}
	return documents, nil
}

// methodSchema builds the schema document for one method. Only parameters
// located in the body (or with an unspecified location) shape the request
// body; query, header and path parameters belong to the transport binding
// and are excluded.
func methodSchema(method *docspec.MethodInfo, definitions *ObjectNode) *ObjectNode {
	root := NewObject()
	root.Put("$id", method.ID())
	root.Put("title", method.Name)
	root.Put("description", method.Description)
	root.Put("type", "object")

	properties := NewObject()
	required := NewArray()
	for _, param := range method.Parameters {
		if param.Location != docspec.Body && param.Location != docspec.Unspecified {
			continue
		}
		properties.Put(param.Name, fieldSchema(param))
		if param.Requirement == docspec.Required {
			required.Add(param.Name)
		}
	}

	root.Put("properties", properties)
	if required.Len() > 0 {
		root.Put("required", required)
	}
	root.Put("definitions", definitions)
	return root
}
