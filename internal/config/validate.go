package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

// ValidationError is a schema violation with its source position.
type ValidationError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateSource unifies the raw document with #Machine.
func validateSource(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid embedded schema: %w", err)
	}
	machine := schema.LookupPath(cue.ParsePath("#Machine"))

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return formatCUEError(filename, err)
	}

	unified := doc.Unify(machine)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(filename, err)
	}
	return nil
}

// formatCUEError reduces a CUE error list to its first entry, preferring a
// position inside the config file over one inside the schema.
func formatCUEError(filename string, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]

	path := first.Path()
	if len(path) > 0 && path[0] == "#Machine" {
		path = path[1:]
	}
	field := strings.Join(path, ".")
	if field == "" {
		field = "config"
	}
	format, args := first.Msg()
	verr := &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}

	positions := errors.Positions(first)
	for _, pos := range positions {
		if pos.Filename() == filename {
			verr.Pos = pos
			break
		}
	}
	if !verr.Pos.IsValid() && len(positions) > 0 {
		verr.Pos = positions[0]
	}
	return verr
}
