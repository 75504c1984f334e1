package catalog

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// RegisterModel derives a Definition from a Go struct and registers it
// under scheme. Field names, required markers, enum choices and defaults
// come from the struct's json and jsonschema tags; property types map onto
// catalog kinds (boolean, integer, number, everything else string).
func (s *Service) RegisterModel(scheme string, model any) error {
	def, err := DefinitionFromModel(scheme, model)
	if err != nil {
		return err
	}
	return s.Register(def)
}

// DefinitionFromModel reflects a struct into a Definition without
// registering it.
func DefinitionFromModel(scheme string, model any) (*Definition, error) {
	// Only fields tagged jsonschema:"required" become required options;
	// the reflector's json-tag heuristic would mark nearly everything.
	reflector := &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(model)
	if schema.Properties == nil || schema.Properties.Len() == 0 {
		return nil, fmt.Errorf("scheme %q: model %T declares no options", scheme, model)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	def := &Definition{Scheme: scheme, Title: schema.Title}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		prop := pair.Value
		opt := Option{
			Name:        pair.Key,
			Required:    required[pair.Key],
			Description: prop.Description,
		}

		switch {
		case len(prop.Enum) > 0:
			opt.Kind = KindEnum
			for _, choice := range prop.Enum {
				opt.Enum = append(opt.Enum, fmt.Sprint(choice))
			}
		case prop.Type == "boolean":
			opt.Kind = KindBoolean
		case prop.Type == "integer":
			opt.Kind = KindInteger
		case prop.Type == "number":
			opt.Kind = KindNumber
		default:
			opt.Kind = KindString
		}

		if prop.Default != nil {
			opt.Default = fmt.Sprint(prop.Default)
		}

		def.Options = append(def.Options, opt)
	}
	return def, nil
}
