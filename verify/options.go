package verify

import (
	"errors"
	"fmt"
)

// ErrNoSuchOption is returned when a mandatory option is absent. Use
// errors.Is to match; errors.As with *NoSuchOptionError yields the key.
var ErrNoSuchOption = errors.New("no such option")

// NoSuchOptionError reports which mandatory option was absent.
type NoSuchOptionError struct {
	Key string
}

func (e *NoSuchOptionError) Error() string {
	return fmt.Sprintf("no such option: %s", e.Key)
}

// Is implements error matching for errors.Is() checks.
func (e *NoSuchOptionError) Is(target error) bool {
	return target == ErrNoSuchOption
}

// GetOption extracts params[key] coerced to the Go type the Kind stands
// for. An absent key returns ok=false with no error; a conversion failure
// propagates. A verifier built without a converter errors instead of
// panicking, matching the Verify dependency check.
func GetOption[T any](v *Verifier, params map[string]any, key string, kind Kind) (T, bool, error) {
	var zero T

	if v.converter == nil {
		return zero, false, errors.New("missing runtime dependency: no converter bound")
	}

	raw, ok := params[key]
	if !ok || raw == nil {
		return zero, false, nil
	}

	converted, err := v.converter.Convert(kind, raw)
	if err != nil {
		return zero, false, fmt.Errorf("option %q: %w", key, err)
	}

	typed, ok := converted.(T)
	if !ok {
		return zero, false, fmt.Errorf("option %q: cannot use %T as %T", key, converted, zero)
	}
	return typed, true, nil
}

// GetOptionOr extracts an option, falling back to the supplied default when
// the key is absent.
func GetOptionOr[T any](v *Verifier, params map[string]any, key string, kind Kind, def func() T) (T, error) {
	value, ok, err := GetOption[T](v, params, key, kind)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		return def(), nil
	}
	return value, nil
}

// MandatoryOption extracts an option whose absence is a hard error. This is
// the one extraction path that fails on absence; callers, typically
// connectivity checkers, use it to abort cleanly when a prerequisite value
// is missing.
func MandatoryOption[T any](v *Verifier, params map[string]any, key string, kind Kind) (T, error) {
	value, ok, err := GetOption[T](v, params, key, kind)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, &NoSuchOptionError{Key: key}
	}
	return value, nil
}
