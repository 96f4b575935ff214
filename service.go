package docspec

import "strconv"

// EndpointInfo describes one transport binding of a method.
type EndpointInfo struct {
	// PathMapping is the URL path the method is reachable at.
	PathMapping string `json:"pathMapping"`

	// DefaultMimeType is the media type the endpoint serves by default.
	DefaultMimeType string `json:"defaultMimeType,omitempty"`
}

// MethodInfo describes a single service method.
type MethodInfo struct {
	// ServiceName is the name of the owning service.
	ServiceName string `json:"serviceName" validate:"required"`

	// Name is the method name within the service.
	Name string `json:"name" validate:"required"`

	// OverloadID distinguishes same-named overloads; 0 for the first.
	OverloadID int `json:"overloadId,omitempty"`

	// ReturnType is the method's return type signature.
	ReturnType TypeSignature `json:"returnType"`

	// Parameters in declaration order.
	Parameters []FieldInfo `json:"parameters" validate:"dive"`

	// Endpoints lists the transport bindings of this method.
	Endpoints []EndpointInfo `json:"endpoints,omitempty"`

	// HTTPMethod is the HTTP verb the method is bound to, e.g. "POST".
	HTTPMethod string `json:"httpMethod,omitempty"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`
}

// ID returns the stable method identifier used as the schema "$id":
// "ServiceName/MethodName", with a "-N" suffix for overloads beyond the first.
func (m *MethodInfo) ID() string {
	id := m.ServiceName + "/" + m.Name
	if m.OverloadID > 0 {
		id += "-" + strconv.Itoa(m.OverloadID)
	}
	return id
}

// ServiceInfo describes a service and its methods.
type ServiceInfo struct {
	// Name is the service identifier.
	Name string `json:"name" validate:"required"`

	// Methods in declaration order.
	Methods []MethodInfo `json:"methods" validate:"dive"`

	// Description is optional human-readable documentation.
	Description string `json:"description,omitempty"`
}

// ServiceSpecification is the root aggregate: every service, struct, enum
// and exception type for one documentation-generation run. It is fully
// constructed before generation and never mutated afterwards, so a single
// value may be shared by concurrent generation calls.
type ServiceSpecification struct {
	Services []ServiceInfo `json:"services" validate:"dive"`

	Enums []EnumInfo `json:"enums" validate:"dive"`

	Structs []StructInfo `json:"structs" validate:"dive"`

	// Exceptions are error payload types. They are plain structs and share
	// the definitions table with Structs.
	Exceptions []StructInfo `json:"exceptions" validate:"dive"`
}

// FindStruct looks up a struct (or exception) by name. Returns nil if not found.
func (s *ServiceSpecification) FindStruct(name string) *StructInfo {
	for i := range s.Structs {
		if s.Structs[i].Name == name {
			return &s.Structs[i]
		}
	}
	for i := range s.Exceptions {
		if s.Exceptions[i].Name == name {
			return &s.Exceptions[i]
		}
	}
	return nil
}

// FindEnum looks up an enum by name. Returns nil if not found.
func (s *ServiceSpecification) FindEnum(name string) *EnumInfo {
	for i := range s.Enums {
		if s.Enums[i].Name == name {
			return &s.Enums[i]
		}
	}
	return nil
}

// FindService looks up a service by name. Returns nil if not found.
func (s *ServiceSpecification) FindService(name string) *ServiceInfo {
	for i := range s.Services {
		if s.Services[i].Name == name {
			return &s.Services[i]
		}
	}
	return nil
}
