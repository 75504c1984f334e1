// Package verify implements the configuration verification pipeline for
// connectors: a two-scope protocol (static parameter validation against a
// catalog, live connectivity probing through a pluggable checker), an
// aggregating result and error model, and typed option extraction with
// deferred registry references.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// SchemeOption is the reserved option key that overrides the verifier's
// default scheme for a single call. This lets one verifier validate against
// scheme-specific catalog entries when multiple schemes share an
// implementation.
const SchemeOption = "scheme"

// Verifier checks connector configurations before the connector is
// instantiated or connected. It holds no per-call state and is safe for
// concurrent use, provided its catalog and converter are.
type Verifier struct {
	defaultScheme string
	catalog       Catalog
	converter     TypeConverter
	registry      Registry
	connectivity  ConnectivityChecker
	logger        *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithCatalog binds the catalog service used for parameter validation.
func WithCatalog(c Catalog) Option {
	return func(v *Verifier) { v.catalog = c }
}

// WithConverter binds the value converter used for coercion and extraction.
func WithConverter(c TypeConverter) Option {
	return func(v *Verifier) { v.converter = c }
}

// WithRegistry binds the registry used to resolve reference-valued options.
func WithRegistry(r Registry) Option {
	return func(v *Verifier) { v.registry = r }
}

// WithConnectivityChecker binds the live probe behind ScopeConnectivity.
// Without one, connectivity verification reports StatusUnsupported.
func WithConnectivityChecker(c ConnectivityChecker) Option {
	return func(v *Verifier) { v.connectivity = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

// New creates a Verifier bound to a default scheme. The Verifier is
// immutable after construction.
func New(defaultScheme string, opts ...Option) *Verifier {
	v := &Verifier{
		defaultScheme: defaultScheme,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// DefaultScheme returns the scheme the verifier validates against when the
// configuration carries no SchemeOption entry.
func (v *Verifier) DefaultScheme() string { return v.defaultScheme }

// Verify runs the requested verification scope over params and returns the
// aggregated result. Domain defects are always reported through the result,
// never as a Go error. A Scope outside the closed enumeration is a caller
// contract violation and panics.
func (v *Verifier) Verify(ctx context.Context, scope Scope, params map[string]any) Result {
	if v.catalog == nil || v.converter == nil {
		return WithStatusAndScope(StatusError, scope).
			Error(WithCodeAndDescription(CodeInternal, "missing runtime dependency").Build()).
			Build()
	}

	switch scope {
	case ScopeParameters:
		return v.verifyParameters(ctx, params)
	case ScopeConnectivity:
		return v.verifyConnectivity(ctx, params)
	}

	panic(fmt.Sprintf("verify: unsupported scope %d", int(scope)))
}

func (v *Verifier) verifyConnectivity(ctx context.Context, params map[string]any) Result {
	if v.connectivity == nil {
		return WithStatusAndScope(StatusUnsupported, ScopeConnectivity).Build()
	}
	return v.connectivity.CheckConnectivity(ctx, params)
}

func (v *Verifier) verifyParameters(ctx context.Context, params map[string]any) Result {
	builder := WithStatusAndScope(StatusOK, ScopeParameters)

	scheme := v.defaultScheme
	if raw, ok := params[SchemeOption]; ok {
		text, err := v.converter.ToString(raw)
		if err != nil {
			return builder.
				Error(WithCodeAndDescription(CodeInternal, "unconvertible scheme value").Parameter(SchemeOption).Build()).
				Build()
		}
		scheme = text
	}

	// The catalog contract wants string-coerced values. A value the
	// converter cannot handle is an internal error, not a silent drop.
	coerced := make(map[string]string, len(params))
	for _, key := range slices.Sorted(maps.Keys(params)) {
		text, err := v.converter.ToString(params[key])
		if err != nil {
			builder.Error(
				WithCodeAndDescription(CodeInternal, "unconvertible option value").
					Parameter(key).
					Build())
			continue
		}
		coerced[key] = text
	}

	outcome, err := v.catalog.Validate(ctx, scheme, coerced)
	if err != nil {
		return builder.
			Error(WithCodeAndDescription(CodeInternal, err.Error()).Build()).
			Build()
	}

	if !outcome.OK() {
		v.translateOutcome(builder, outcome)
	}

	result := builder.Build()
	v.logger.Debug("verified parameters",
		"scheme", scheme,
		"status", result.Status(),
		"defects", len(result.Errors()))
	return result
}

// translateOutcome appends one error per outcome entry, in the fixed
// category order unknown, missing, invalid-boolean, invalid-integer,
// invalid-number, invalid-enum. Map-backed categories are walked in key
// order so the output is deterministic.
func (v *Verifier) translateOutcome(builder *ResultBuilder, outcome *CatalogOutcome) {
	for _, name := range outcome.Unknown {
		builder.Error(WithUnknownOption(name).Build())
	}
	for _, name := range outcome.Missing {
		builder.Error(WithMissingOption(name).Build())
	}
	for _, name := range slices.Sorted(maps.Keys(outcome.InvalidBoolean)) {
		builder.Error(WithIllegalOption(name, outcome.InvalidBoolean[name]).Build())
	}
	for _, name := range slices.Sorted(maps.Keys(outcome.InvalidInteger)) {
		builder.Error(WithIllegalOption(name, outcome.InvalidInteger[name]).Build())
	}
	for _, name := range slices.Sorted(maps.Keys(outcome.InvalidNumber)) {
		builder.Error(WithIllegalOption(name, outcome.InvalidNumber[name]).Build())
	}
	for _, name := range slices.Sorted(maps.Keys(outcome.InvalidEnum)) {
		builder.Error(
			WithIllegalOption(name, outcome.InvalidEnum[name]).
				Detail(DetailEnumValues, slices.Clone(outcome.EnumChoices[name])).
				Build())
	}
}
