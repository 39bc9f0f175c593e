// Package schema checks the JSON shape of submission bodies before they reach the validator.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/craviont/craviont-site-api/internal/form"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// ErrInvalidPayload indicates a body that is not a JSON object of string fields.
var ErrInvalidPayload = errors.New("invalid payload")

// PayloadChecker holds one compiled schema per form kind.
type PayloadChecker struct {
	schemas map[form.Kind]*jsonschema.Schema
}

// NewPayloadChecker compiles the embedded submission schemas.
func NewPayloadChecker() (*PayloadChecker, error) {
	compiler := jsonschema.NewCompiler()
	kinds := []form.Kind{form.KindContact, form.KindServiceRequest}

	checker := &PayloadChecker{schemas: make(map[form.Kind]*jsonschema.Schema, len(kinds))}
	for _, kind := range kinds {
		name := fmt.Sprintf("schemas/%s.schema.json", kind)
		raw, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		url := "mem://" + name
		if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", name, err)
		}
		checker.schemas[kind] = compiled
	}
	return checker, nil
}

// Check validates body against the schema of kind. Failures wrap ErrInvalidPayload.
func (c *PayloadChecker) Check(kind form.Kind, body []byte) error {
	compiled, ok := c.schemas[kind]
	if !ok {
		return fmt.Errorf("%w: unknown form %q", ErrInvalidPayload, kind)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var document interface{}
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := compiled.Validate(document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
