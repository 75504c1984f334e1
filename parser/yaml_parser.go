// Package parser provides parsing of connector configuration documents.
package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLConfigParser implements ConfigParser for YAML documents.
type YAMLConfigParser struct{}

// NewYAMLConfigParser creates a new YAMLConfigParser.
func NewYAMLConfigParser() ConfigParser {
	return &YAMLConfigParser{}
}

// Parse unmarshals YAML bytes into a flat option map.
func (p *YAMLConfigParser) Parse(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return Flatten(doc), nil
}
