// Package docgen orchestrates schema generation: it optionally validates
// the service specification, renders one JSON Schema document per method
// and writes the documents through a sink.
package docgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/docspec/docspec"
	"github.com/docspec/docspec/jsonschema"
	"github.com/docspec/docspec/sink"
)

// Config holds the configuration for schema generation.
type Config struct {
	// OutDir is the directory where generated documents are written.
	// Ignored when Sink is set.
	OutDir string

	// Sink overrides the default filesystem sink.
	Sink sink.Sink

	// Strict runs specification validation before generating and fails on
	// name collisions and dangling type references. The default is the
	// lenient behavior: unresolved references degrade in the output
	// instead of failing generation.
	Strict bool

	// Compact emits documents without indentation. The default is
	// two-space indented output.
	Compact bool

	// Logger receives progress output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Generate renders the per-method schema documents for spec and writes one
// file per method, named "<service>.<method>.schema.json".
func Generate(ctx context.Context, spec *docspec.ServiceSpecification, cfg *Config) error {
	if spec == nil {
		return errors.New("docgen: specification is nil")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	cfg = applyConfigDefaults(cfg)

	out := cfg.Sink
	if out == nil {
		if cfg.OutDir == "" {
			return errors.New("docgen: OutDir or Sink is required")
		}
		out = sink.NewFilesystemSink(cfg.OutDir)
	}

	if cfg.Strict {
		if errs := spec.Validate(); len(errs) > 0 {
			return fmt.Errorf("docgen: invalid specification: %w", errors.Join(errs...))
		}
	}

	documents, err := jsonschema.Generate(spec)
	if err != nil {
		return err
	}

	// Documents come back in service-then-method declaration order, so the
	// method list can be walked in lockstep to derive file names.
	i := 0
	for si := range spec.Services {
		svc := &spec.Services[si]
		for mi := range svc.Methods {
			method := &svc.Methods[mi]
			doc := documents[i]
			i++

			var data []byte
			if cfg.Compact {
				data, err = json.Marshal(doc)
			} else {
				data, err = json.MarshalIndent(doc, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("docgen: marshal schema for %s: %w", method.ID(), err)
			}
			if !cfg.Compact {
				data = append(data, '\n')
			}

			path := fileName(method)
			if err := out.WriteFile(ctx, path, data); err != nil {
				return fmt.Errorf("docgen: write %s: %w", path, err)
			}
			cfg.Logger.Debug("wrote method schema", "path", path, "id", method.ID())
		}
	}

	cfg.Logger.Info("schema generation complete", "methods", len(documents))
	return nil
}

// applyConfigDefaults applies default values to Config without mutating
// the input.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Logger == nil {
		result.Logger = slog.Default()
	}
	return &result
}

// fileName returns the deterministic output path for a method's schema
// document.
func fileName(m *docspec.MethodInfo) string {
	name := m.ServiceName + "." + m.Name
	if m.OverloadID > 0 {
		name += "-" + strconv.Itoa(m.OverloadID)
	}
	name = strings.ReplaceAll(name, "/", "_")
	return name + ".schema.json"
}
