package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed definition.schema.json
var metaSchema string

var compileMeta = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("definition.schema.json", strings.NewReader(metaSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("definition.schema.json")
})

// ParseDefinition parses a catalog definition document, YAML or JSON, and
// checks it against the embedded meta-schema before decoding. Documents
// with unknown fields, bad kinds or empty enum choice lists are rejected
// here rather than surfacing later as odd validation behavior.
func ParseDefinition(data []byte) (*Definition, error) {
	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("catalog definition is not valid YAML or JSON: %w", err)
	}

	schema, err := compileMeta()
	if err != nil {
		return nil, fmt.Errorf("compiling catalog meta-schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, fmt.Errorf("catalog definition: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("catalog definition: %w", err)
	}
	if err := checkDefinition(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// RegisterDefinition parses data and registers the result in one step.
func (s *Service) RegisterDefinition(data []byte) (*Definition, error) {
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, err
	}
	if err := s.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}
