// Package catalog implements the default in-memory schema catalog: a
// declarative description of the option names, kinds and enum choices each
// connector scheme accepts, and the validation of string-coerced option
// maps against it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/camber-dev/camber-host-sdk/verify"
)

// Kind is the declared value shape of a catalog option.
type Kind string

const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindEnum    Kind = "enum"
)

// Option declares one configurable option of a scheme.
type Option struct {
	// Name is the option key. When Pattern is set it is a glob matched
	// against candidate keys, e.g. "header.*".
	Name string `yaml:"name" json:"name"`

	// Kind is the declared value shape.
	Kind Kind `yaml:"kind" json:"kind"`

	// Required marks the option mandatory. Pattern options cannot be
	// required.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`

	// Enum lists the allowed literals of an enum-kinded option.
	Enum []string `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Default is the documented default literal, if any.
	Default string `yaml:"default,omitempty" json:"default,omitempty"`

	// Pattern marks Name as a glob.
	Pattern bool `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Description is free-form documentation.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Definition declares the full option schema of one scheme.
type Definition struct {
	Scheme  string   `yaml:"scheme" json:"scheme"`
	Title   string   `yaml:"title,omitempty" json:"title,omitempty"`
	Options []Option `yaml:"options" json:"options"`
}

// Sentinel errors for common error patterns.
var (
	// ErrSchemeRegistered is returned when a scheme is registered twice.
	ErrSchemeRegistered = errors.New("scheme already registered")

	// ErrSchemeUnknown is returned when validation targets a scheme
	// that was never registered.
	ErrSchemeUnknown = errors.New("scheme not registered")
)

// Service implements the verify.Catalog port over an in-memory scheme
// table. It is safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	schemes map[string]*Definition
	logger  *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates an empty catalog.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		schemes: make(map[string]*Definition),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds the option schema for a scheme.
func (s *Service) Register(def *Definition) error {
	if err := checkDefinition(def); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.schemes[def.Scheme]; exists {
		return fmt.Errorf("%q: %w", def.Scheme, ErrSchemeRegistered)
	}
	s.schemes[def.Scheme] = def
	s.logger.Debug("registered scheme", "scheme", def.Scheme, "options", len(def.Options))
	return nil
}

// Definition returns the registered schema for a scheme.
func (s *Service) Definition(scheme string) (*Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.schemes[scheme]
	return def, ok
}

// Schemes returns all registered scheme names, sorted.
func (s *Service) Schemes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.schemes))
}

// Validate checks a string-coerced option map against the schema for
// scheme. All categories are always evaluated; the outcome carries every
// defect found. The reserved "scheme" key addresses the schema and is
// never validated as an option.
func (s *Service) Validate(_ context.Context, scheme string, params map[string]string) (*verify.CatalogOutcome, error) {
	s.mu.RLock()
	def, ok := s.schemes[scheme]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", scheme, ErrSchemeUnknown)
	}

	outcome := &verify.CatalogOutcome{}

	for _, key := range slices.Sorted(maps.Keys(params)) {
		if key == verify.SchemeOption {
			continue
		}
		opt, ok := def.lookup(key)
		if !ok {
			outcome.Unknown = append(outcome.Unknown, key)
			continue
		}
		checkValue(outcome, opt, key, params[key])
	}

	for _, opt := range def.Options {
		if !opt.Required || opt.Pattern {
			continue
		}
		if _, present := params[opt.Name]; !present {
			outcome.Missing = append(outcome.Missing, opt.Name)
		}
	}

	return outcome, nil
}

// lookup finds the option declaring key, trying exact names before
// pattern options.
func (d *Definition) lookup(key string) (Option, bool) {
	for _, opt := range d.Options {
		if !opt.Pattern && opt.Name == key {
			return opt, true
		}
	}
	for _, opt := range d.Options {
		if !opt.Pattern {
			continue
		}
		if ok, err := doublestar.Match(opt.Name, key); err == nil && ok {
			return opt, true
		}
	}
	return Option{}, false
}

func checkValue(outcome *verify.CatalogOutcome, opt Option, key, value string) {
	switch opt.Kind {
	case KindBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			if outcome.InvalidBoolean == nil {
				outcome.InvalidBoolean = make(map[string]string)
			}
			outcome.InvalidBoolean[key] = value
		}
	case KindInteger:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			if outcome.InvalidInteger == nil {
				outcome.InvalidInteger = make(map[string]string)
			}
			outcome.InvalidInteger[key] = value
		}
	case KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			if outcome.InvalidNumber == nil {
				outcome.InvalidNumber = make(map[string]string)
			}
			outcome.InvalidNumber[key] = value
		}
	case KindEnum:
		if !slices.Contains(opt.Enum, value) {
			if outcome.InvalidEnum == nil {
				outcome.InvalidEnum = make(map[string]string)
			}
			if outcome.EnumChoices == nil {
				outcome.EnumChoices = make(map[string][]string)
			}
			outcome.InvalidEnum[key] = value
			outcome.EnumChoices[key] = slices.Clone(opt.Enum)
		}
	}
}

func checkDefinition(def *Definition) error {
	if def == nil || def.Scheme == "" {
		return errors.New("catalog definition needs a scheme")
	}
	for _, opt := range def.Options {
		if opt.Name == "" {
			return fmt.Errorf("scheme %q: option with empty name", def.Scheme)
		}
		if opt.Kind == KindEnum && len(opt.Enum) == 0 {
			return fmt.Errorf("scheme %q: enum option %q without choices", def.Scheme, opt.Name)
		}
		if opt.Pattern && opt.Required {
			return fmt.Errorf("scheme %q: pattern option %q cannot be required", def.Scheme, opt.Name)
		}
	}
	return nil
}
