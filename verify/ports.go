package verify

import "context"

// Catalog validates a string-coerced option map against the declarative
// schema registered for a scheme. Implementations must be deterministic for
// a given catalog version and input, and safe for concurrent use.
type Catalog interface {
	Validate(ctx context.Context, scheme string, params map[string]string) (*CatalogOutcome, error)
}

// CatalogOutcome is the structured outcome a Catalog reports. A nil or
// empty category means no defect of that category was found.
type CatalogOutcome struct {
	// Unknown lists option names the scheme does not declare.
	Unknown []string

	// Missing lists required option names absent from the input.
	Missing []string

	// InvalidBoolean, InvalidInteger, InvalidNumber and InvalidEnum map
	// option names to their offending literal.
	InvalidBoolean map[string]string
	InvalidInteger map[string]string
	InvalidNumber  map[string]string
	InvalidEnum    map[string]string

	// EnumChoices maps enum-kinded option names to their allowed
	// literal sequence.
	EnumChoices map[string][]string
}

// OK reports whether the outcome carries no defects.
func (o *CatalogOutcome) OK() bool {
	return len(o.Unknown) == 0 &&
		len(o.Missing) == 0 &&
		len(o.InvalidBoolean) == 0 &&
		len(o.InvalidInteger) == 0 &&
		len(o.InvalidNumber) == 0 &&
		len(o.InvalidEnum) == 0
}

// Kind identifies a conversion target for option values.
type Kind string

const (
	KindString   Kind = "string"   // string
	KindBool     Kind = "bool"     // bool
	KindInt      Kind = "int"      // int64
	KindFloat    Kind = "float"    // float64
	KindDuration Kind = "duration" // time.Duration
	KindVersion  Kind = "version"  // semantic version
)

// TypeConverter coerces raw option values between representations. A value
// with no coercion to the target fails with a conversion error; converters
// never swallow failures.
type TypeConverter interface {
	// ToString returns the string form of a value.
	ToString(value any) (string, error)

	// Convert coerces a value to the Go type the Kind stands for.
	Convert(kind Kind, value any) (any, error)
}

// Registry resolves named objects referenced from configuration values.
type Registry interface {
	// Resolve returns the instance bound under name, or an error when
	// the name is unbound.
	Resolve(name string) (any, error)
}

// ConnectivityChecker performs the live probe behind ScopeConnectivity.
// Implementations typically extract typed options through GetOption and
// MandatoryOption before opening the real connection.
type ConnectivityChecker interface {
	CheckConnectivity(ctx context.Context, params map[string]any) Result
}

// ConnectivityCheckerFunc adapts a function to the ConnectivityChecker
// interface.
type ConnectivityCheckerFunc func(ctx context.Context, params map[string]any) Result

func (f ConnectivityCheckerFunc) CheckConnectivity(ctx context.Context, params map[string]any) Result {
	return f(ctx, params)
}
