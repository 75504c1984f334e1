package parser

// Flatten joins nested mappings into dotted option keys, so
// {"transport": {"timeout": "5s"}} becomes {"transport.timeout": "5s"}.
// Non-map values, including sequences, pass through untouched.
func Flatten(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out map[string]any, prefix string, doc map[string]any) {
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = value
	}
}
