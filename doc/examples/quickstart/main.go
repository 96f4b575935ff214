// Package quickstart provides simple example code for documentation.
package quickstart

import (
	"context"
	"log"

	"github.com/docspec/docspec"
	"github.com/docspec/docspec/docgen"
	"github.com/docspec/docspec/provider"
)

func exampleResolution() *docspec.ServiceSpecification {
	spec := &docspec.ServiceSpecification{}

	resolvers := provider.Default()
	for _, descriptor := range []any{News{}, CreateNewsParams{}, NewsStatus("")} {
		switch info := resolvers.Resolve(descriptor).(type) {
		case *docspec.StructInfo:
			spec.Structs = append(spec.Structs, *info)
		case *docspec.EnumInfo:
			spec.Enums = append(spec.Enums, *info)
		}
	}

	params := spec.Structs[1]
	spec.Services = append(spec.Services, docspec.ServiceInfo{
		Name: "News",
		Methods: []docspec.MethodInfo{{
			ServiceName: "News",
			Name:        "Create",
			ReturnType:  docspec.StructType(spec.Structs[0].Name),
			Parameters: []docspec.FieldInfo{{
				Name:        "params",
				Type:        docspec.StructType(params.Name),
				Requirement: docspec.Required,
				Location:    docspec.Body,
			}},
			HTTPMethod: "POST",
		}},
	})
	return spec
}

func exampleGeneration() {
	spec := exampleResolution()
	err := docgen.Generate(context.Background(), spec, &docgen.Config{
		OutDir: "./schemas",
		Strict: true,
	})
	if err != nil {
		log.Fatal(err)
	}
}

// Keep imports used.
var (
	_ = exampleGeneration
)
