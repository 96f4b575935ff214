package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/docspec/docspec"
	"github.com/docspec/docspec/docgen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate JSON Schema documents from a service specification."`
	Check   CheckCmd   `cmd:"" help:"Validate a service specification without generating output."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Spec    string `arg:"" help:"Path to the service specification JSON file." type:"existingfile"`
	Out     string `help:"Output directory for generated documents." short:"o" default:"./schemas"`
	Strict  bool   `help:"Fail on name collisions and dangling type references."`
	Compact bool   `help:"Emit documents without indentation."`
}

func (c *GenCmd) Run() error {
	spec, err := loadSpecification(c.Spec)
	if err != nil {
		return err
	}
	return docgen.Generate(context.Background(), spec, &docgen.Config{
		OutDir:  c.Out,
		Strict:  c.Strict,
		Compact: c.Compact,
	})
}

type CheckCmd struct {
	Spec string `arg:"" help:"Path to the service specification JSON file." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	spec, err := loadSpecification(c.Spec)
	if err != nil {
		return err
	}
	errs := spec.Validate()
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("specification has %d problem(s)", len(errs))
	}
	fmt.Println("specification is valid")
	return nil
}

func loadSpecification(path string) (*docspec.ServiceSpecification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification: %w", err)
	}
	var spec docspec.ServiceSpecification
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse specification: %w", err)
	}
	return &spec, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docspec"),
		kong.Description("docspec CLI for generating JSON Schema API documentation."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
