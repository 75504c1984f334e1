package parser

// ConfigParser parses a raw configuration document into the flat option
// map the verifier consumes. Nested mappings flatten to dotted keys.
type ConfigParser interface {
	// Parse unmarshals configuration bytes into an option map.
	Parse(data []byte) (map[string]any, error)
}
