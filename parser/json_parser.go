package parser

import (
	"encoding/json"
	"fmt"
)

// JSONConfigParser implements ConfigParser for JSON documents.
type JSONConfigParser struct{}

// NewJSONConfigParser creates a new JSONConfigParser.
func NewJSONConfigParser() ConfigParser {
	return &JSONConfigParser{}
}

// Parse unmarshals JSON bytes into a flat option map.
func (p *JSONConfigParser) Parse(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return Flatten(doc), nil
}
