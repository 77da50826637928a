// Package schema embeds and compiles the JSON Schema for generation-request
// input, following the same jsonschema/v5 usage as the pack's protocol
// schema tests (compile once, validate an already-decoded any value).
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed generation_input.schema.json
var generationInputSchemaSource []byte

const schemaURL = "https://scenecraft.internal/schemas/generation_input.schema.json"

var (
	once       sync.Once
	compiled   *jsonschema.Schema
	compileErr error
)

func compile() (*jsonschema.Schema, error) {
	once.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(generationInputSchemaSource)); err != nil {
			compileErr = fmt.Errorf("add generation input schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// GenerationInput is the {code, description?} shape an LLM/host submits
// for a single generate call.
type GenerationInput struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// ValidateInput parses raw JSON against the generation-input schema and
// returns the decoded struct on success.
func ValidateInput(raw []byte) (GenerationInput, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return GenerationInput{}, fmt.Errorf("invalid JSON: %w", err)
	}
	s, err := compile()
	if err != nil {
		return GenerationInput{}, err
	}
	if err := s.Validate(doc); err != nil {
		return GenerationInput{}, err
	}
	var input GenerationInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return GenerationInput{}, fmt.Errorf("decode: %w", err)
	}
	return input, nil
}
