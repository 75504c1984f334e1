package verify

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// referencePrefix marks a configuration value that names an object in the
// registry instead of carrying a literal.
const referencePrefix = "#"

// ParamValue distinguishes literal option values from registry references.
type ParamValue interface {
	isParamValue()
}

// Literal is a directly-coercible option value.
type Literal struct {
	Value any
}

// Reference names an object to resolve from the registry at bind time.
type Reference struct {
	Name string
}

func (Literal) isParamValue()   {}
func (Reference) isParamValue() {}

// ClassifyValue splits a raw option value into the literal/reference sum.
// A string of the form "#name" classifies as a Reference.
func ClassifyValue(value any) ParamValue {
	if s, ok := value.(string); ok && len(s) > 1 && strings.HasPrefix(s, referencePrefix) {
		return Reference{Name: strings.TrimPrefix(s, referencePrefix)}
	}
	return Literal{Value: value}
}

// FieldTable maps option names onto the fields of one consuming type. A
// table is declared once per type through Field registration; there is no
// runtime introspection.
type FieldTable[T any] struct {
	setters map[string]func(*T, any) error
}

// NewFieldTable starts an empty table for T.
func NewFieldTable[T any]() *FieldTable[T] {
	return &FieldTable[T]{setters: make(map[string]func(*T, any) error)}
}

// Field registers the setter invoked for entries named name.
func (t *FieldTable[T]) Field(name string, set func(*T, any) error) *FieldTable[T] {
	t.setters[name] = set
	return t
}

// ApplyProperties assigns each params entry with a registered field onto
// target. Binding is two-phase: literal values are assigned first, then
// reference values are resolved through the verifier's registry and the
// resolved instances assigned through the same setters. Entries without a
// registered field are ignored.
func ApplyProperties[T any](v *Verifier, table *FieldTable[T], target *T, params map[string]any) error {
	type deferredRef struct {
		set  func(*T, any) error
		key  string
		name string
	}
	var refs []deferredRef

	for _, key := range slices.Sorted(maps.Keys(params)) {
		set, ok := table.setters[key]
		if !ok {
			continue
		}

		switch value := ClassifyValue(params[key]).(type) {
		case Reference:
			refs = append(refs, deferredRef{set: set, key: key, name: value.Name})
		case Literal:
			if err := set(target, value.Value); err != nil {
				return fmt.Errorf("option %q: %w", key, err)
			}
		}
	}

	for _, ref := range refs {
		if v.registry == nil {
			return fmt.Errorf("option %q: reference %q: no registry bound", ref.key, ref.name)
		}
		instance, err := v.registry.Resolve(ref.name)
		if err != nil {
			return fmt.Errorf("option %q: %w", ref.key, err)
		}
		if err := ref.set(target, instance); err != nil {
			return fmt.Errorf("option %q: %w", ref.key, err)
		}
	}
	return nil
}

// ApplyPropertiesPrefixed applies only the entries under prefix, with the
// prefix stripped before field lookup.
func ApplyPropertiesPrefixed[T any](v *Verifier, table *FieldTable[T], target *T, prefix string, params map[string]any) error {
	return ApplyProperties(v, table, target, ExtractProperties(params, prefix))
}

// ExtractProperties returns the entries whose keys start with prefix, with
// the prefix stripped.
func ExtractProperties(params map[string]any, prefix string) map[string]any {
	out := make(map[string]any)
	for key, value := range params {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			out[strings.TrimPrefix(key, prefix)] = value
		}
	}
	return out
}

// FilterProperties returns the entries whose keys match the glob pattern.
// Keys are matched whole; dotted segments are not treated specially.
func FilterProperties(params map[string]any, pattern string) map[string]any {
	out := make(map[string]any)
	for key, value := range params {
		if ok, err := doublestar.Match(pattern, key); err == nil && ok {
			out[key] = value
		}
	}
	return out
}
