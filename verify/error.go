package verify

import (
	"fmt"
	"maps"
	"slices"
)

// Code classifies a configuration defect.
type Code string

const (
	// CodeInternal marks an environment or dependency failure, not a
	// defect in the configuration itself.
	CodeInternal Code = "INTERNAL"

	// CodeUnknownOption marks an option the catalog does not know for
	// the resolved scheme.
	CodeUnknownOption Code = "UNKNOWN_OPTION"

	// CodeMissingOption marks a required option that is absent.
	CodeMissingOption Code = "MISSING_OPTION"

	// CodeIllegalOption marks an option whose value fails type or
	// enum validation.
	CodeIllegalOption Code = "ILLEGAL_OPTION"

	// CodeNoSuchOption marks a mandatory option requested through
	// MandatoryOption that is absent from the map. It occurs during
	// option extraction, outside catalog validation.
	CodeNoSuchOption Code = "NO_SUCH_OPTION"
)

// Detail keys shared by the standard codes. Connectivity checkers may add
// their own.
const (
	// DetailValue carries the offending literal of an illegal option.
	DetailValue = "value"

	// DetailEnumValues carries the allowed literal sequence of an
	// enum-kinded option, as a []string.
	DetailEnumValues = "enum.values"
)

// Error describes one classified configuration defect. It is immutable;
// build instances through ErrorBuilder.
type Error struct {
	code        Code
	parameters  []string
	description string
	details     map[string]any
}

// Code returns the defect classification.
func (e Error) Code() Code { return e.code }

// Parameters returns the option names implicated by the defect. The slice
// is empty for internal errors.
func (e Error) Parameters() []string { return slices.Clone(e.parameters) }

// Description returns the human readable defect text.
func (e Error) Description() string { return e.description }

// Detail returns one extra detail value by key.
func (e Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of all extra detail values.
func (e Error) Details() map[string]any {
	if len(e.details) == 0 {
		return nil
	}
	return maps.Clone(e.details)
}

func (e Error) String() string {
	if len(e.parameters) == 0 {
		return fmt.Sprintf("%s: %s", e.code, e.description)
	}
	return fmt.Sprintf("%s: %s %v", e.code, e.description, e.parameters)
}

// ErrorBuilder accumulates the pieces of an Error.
type ErrorBuilder struct {
	code        Code
	parameters  []string
	description string
	details     map[string]any
}

// NewError starts a builder for the given code.
func NewError(code Code) *ErrorBuilder {
	return &ErrorBuilder{code: code}
}

// WithCodeAndDescription starts a builder with a code and description.
func WithCodeAndDescription(code Code, description string) *ErrorBuilder {
	return &ErrorBuilder{code: code, description: description}
}

// WithUnknownOption starts a builder for an option the catalog does not
// recognize.
func WithUnknownOption(name string) *ErrorBuilder {
	return WithCodeAndDescription(CodeUnknownOption, "unknown option").Parameter(name)
}

// WithMissingOption starts a builder for a required option that is absent.
func WithMissingOption(name string) *ErrorBuilder {
	return WithCodeAndDescription(CodeMissingOption, "missing mandatory option").Parameter(name)
}

// WithIllegalOption starts a builder for an option whose value fails
// validation. The offending value is recorded under DetailValue.
func WithIllegalOption(name, value string) *ErrorBuilder {
	return WithCodeAndDescription(CodeIllegalOption, "illegal option value").
		Parameter(name).
		Detail(DetailValue, value)
}

// Parameter adds an implicated option name.
func (b *ErrorBuilder) Parameter(name string) *ErrorBuilder {
	b.parameters = append(b.parameters, name)
	return b
}

// Describe sets the human readable defect text.
func (b *ErrorBuilder) Describe(format string, args ...any) *ErrorBuilder {
	b.description = fmt.Sprintf(format, args...)
	return b
}

// Detail records one extra detail value.
func (b *ErrorBuilder) Detail(key string, value any) *ErrorBuilder {
	if b.details == nil {
		b.details = make(map[string]any)
	}
	b.details[key] = value
	return b
}

// Build finalizes the Error. The builder can be discarded afterwards.
func (b *ErrorBuilder) Build() Error {
	return Error{
		code:        b.code,
		parameters:  slices.Clone(b.parameters),
		description: b.description,
		details:     maps.Clone(b.details),
	}
}
