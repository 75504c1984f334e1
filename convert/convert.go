// Package convert implements the default value converter used to coerce
// raw configuration values during verification and option extraction.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/camber-dev/camber-host-sdk/verify"
)

// ErrCannotConvert is returned when a value has no coercion to the target.
var ErrCannotConvert = errors.New("cannot convert value")

// ConversionError reports which value failed to coerce to which kind.
type ConversionError struct {
	Kind  verify.Kind
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v (%T) to %s", e.Value, e.Value, e.Kind)
}

// Is implements error matching for errors.Is() checks.
func (e *ConversionError) Is(target error) bool {
	return target == ErrCannotConvert
}

// Func converts a raw value to one target type.
type Func func(value any) (any, error)

// Converter implements the verify.TypeConverter port with coercions for
// the standard kinds plus any registered custom kinds. The zero set covers
// string, bool, int, float, duration and semantic version values.
type Converter struct {
	custom map[verify.Kind]Func
}

// Option configures a Converter.
type Option func(*Converter)

// WithKind registers a conversion for a custom kind, or overrides a
// standard one.
func WithKind(kind verify.Kind, fn Func) Option {
	return func(c *Converter) { c.custom[kind] = fn }
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{custom: make(map[verify.Kind]Func)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToString returns the canonical string form of a value.
func (c *Converter) ToString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", &ConversionError{Kind: verify.KindString, Value: value}
}

// Convert coerces a value to the Go type the Kind stands for: string,
// bool, int64, float64, time.Duration or *semver.Version.
func (c *Converter) Convert(kind verify.Kind, value any) (any, error) {
	if fn, ok := c.custom[kind]; ok {
		return fn(value)
	}

	switch kind {
	case verify.KindString:
		return c.ToString(value)
	case verify.KindBool:
		return c.toBool(value)
	case verify.KindInt:
		return c.toInt(value)
	case verify.KindFloat:
		return c.toFloat(value)
	case verify.KindDuration:
		return c.toDuration(value)
	case verify.KindVersion:
		return c.toVersion(value)
	}
	return nil, fmt.Errorf("unsupported kind %q: %w", kind, ErrCannotConvert)
}

func (c *Converter) toBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConversionError{Kind: verify.KindBool, Value: value}
		}
		return parsed, nil
	}
	return nil, &ConversionError{Kind: verify.KindBool, Value: value}
}

func (c *Converter) toInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return parsed, nil
		}
	}
	return nil, &ConversionError{Kind: verify.KindInt, Value: value}
}

func (c *Converter) toFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return parsed, nil
		}
	}
	return nil, &ConversionError{Kind: verify.KindFloat, Value: value}
}

func (c *Converter) toDuration(value any) (any, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err == nil {
			return parsed, nil
		}
	}
	return nil, &ConversionError{Kind: verify.KindDuration, Value: value}
}

func (c *Converter) toVersion(value any) (any, error) {
	switch v := value.(type) {
	case *semver.Version:
		return v, nil
	case string:
		parsed, err := semver.NewVersion(v)
		if err == nil {
			return parsed, nil
		}
	}
	return nil, &ConversionError{Kind: verify.KindVersion, Value: value}
}
