package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed data/levels.schema.json
var schemaSource []byte

const schemaURL = "levels.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Validate checks raw content YAML against the content schema. The document
// goes through JSON first so numbers and maps have the shapes the validator
// expects.
func Validate(raw []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode content: %w", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert content: %w", err)
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return fmt.Errorf("convert content: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("content schema: %w", err)
	}
	return nil
}
