package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/camber-dev/camber-host-sdk/verify"
)

func TestConverter_ToString(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "Nil", input: nil, want: ""},
		{name: "String", input: "plain", want: "plain"},
		{name: "Bool", input: true, want: "true"},
		{name: "Int", input: 8080, want: "8080"},
		{name: "Int64", input: int64(-7), want: "-7"},
		{name: "Float", input: 0.5, want: "0.5"},
		{name: "Bytes", input: []byte("raw"), want: "raw"},
		{name: "Stringer", input: 30 * time.Second, want: "30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToString(tt.input)
			if err != nil {
				t.Fatalf("ToString(%v) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConverter_ToStringUnconvertible(t *testing.T) {
	c := New()

	_, err := c.ToString(make(chan int))
	if !errors.Is(err, ErrCannotConvert) {
		t.Errorf("ToString(chan) error = %v, want ErrCannotConvert", err)
	}
}

func TestConverter_Convert(t *testing.T) {
	c := New()

	tests := []struct {
		name    string
		kind    verify.Kind
		input   any
		want    any
		wantErr bool
	}{
		{name: "BoolFromString", kind: verify.KindBool, input: "true", want: true},
		{name: "BoolPassthrough", kind: verify.KindBool, input: false, want: false},
		{name: "BoolInvalid", kind: verify.KindBool, input: "maybe", wantErr: true},
		{name: "IntFromString", kind: verify.KindInt, input: "42", want: int64(42)},
		{name: "IntFromInt", kind: verify.KindInt, input: 42, want: int64(42)},
		{name: "IntFromIntegralFloat", kind: verify.KindInt, input: 42.0, want: int64(42)},
		{name: "IntFromFractionalFloat", kind: verify.KindInt, input: 42.5, wantErr: true},
		{name: "IntInvalid", kind: verify.KindInt, input: "many", wantErr: true},
		{name: "FloatFromString", kind: verify.KindFloat, input: "0.5", want: 0.5},
		{name: "FloatFromInt", kind: verify.KindFloat, input: 2, want: 2.0},
		{name: "DurationFromString", kind: verify.KindDuration, input: "1m30s", want: 90 * time.Second},
		{name: "DurationFromMillis", kind: verify.KindDuration, input: 1500, want: 1500 * time.Millisecond},
		{name: "DurationInvalid", kind: verify.KindDuration, input: "soon", wantErr: true},
		{name: "StringFromInt", kind: verify.KindString, input: 7, want: "7"},
		{name: "UnsupportedKind", kind: verify.Kind("matrix"), input: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.kind, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert(%s, %v) error = %v, wantErr %v", tt.kind, tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrCannotConvert) {
					t.Errorf("error = %v, want ErrCannotConvert", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Convert(%s, %v) = %v, want %v", tt.kind, tt.input, got, tt.want)
			}
		})
	}
}

func TestConverter_ConvertVersion(t *testing.T) {
	c := New()

	got, err := c.Convert(verify.KindVersion, "1.2.3")
	if err != nil {
		t.Fatalf("Convert(version) error = %v", err)
	}
	version, ok := got.(*semver.Version)
	if !ok {
		t.Fatalf("Convert(version) = %T, want *semver.Version", got)
	}
	if version.String() != "1.2.3" {
		t.Errorf("version = %s, want 1.2.3", version)
	}

	if _, err := c.Convert(verify.KindVersion, "not-a-version"); err == nil {
		t.Error("invalid version should not convert")
	}
}

func TestConverter_CustomKind(t *testing.T) {
	upper := func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, ErrCannotConvert
		}
		return "custom:" + s, nil
	}
	c := New(WithKind(verify.Kind("tagged"), upper))

	got, err := c.Convert(verify.Kind("tagged"), "x")
	if err != nil {
		t.Fatalf("Convert(tagged) error = %v", err)
	}
	if got != "custom:x" {
		t.Errorf("Convert(tagged) = %v", got)
	}
}
