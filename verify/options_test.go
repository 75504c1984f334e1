package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOption(t *testing.T) {
	v := newTestVerifier(&stubCatalog{})
	params := map[string]any{"port": 8080, "host": "example.com"}

	port, ok, err := GetOption[int64](v, params, "port", KindInt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(8080), port)

	_, ok, err = GetOption[int64](v, params, "absent", KindInt)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = GetOption[int64](v, params, "host", KindInt)
	assert.Error(t, err, "conversion failure must propagate")
}

func TestGetOptionOr(t *testing.T) {
	v := newTestVerifier(&stubCatalog{})
	params := map[string]any{"host": "example.com"}

	host, err := GetOptionOr(v, params, "host", KindString, func() string { return "localhost" })
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)

	fallback, err := GetOptionOr(v, params, "absent", KindString, func() string { return "localhost" })
	require.NoError(t, err)
	assert.Equal(t, "localhost", fallback)
}

func TestMandatoryOption(t *testing.T) {
	v := newTestVerifier(&stubCatalog{})
	params := map[string]any{"host": "example.com"}

	host, err := MandatoryOption[string](v, params, "host", KindString)
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)

	_, err = MandatoryOption[string](v, params, "absent", KindString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSuchOption))

	var nse *NoSuchOptionError
	require.True(t, errors.As(err, &nse))
	assert.Equal(t, "absent", nse.Key)
}

func TestGetOption_NoConverterBound(t *testing.T) {
	v := New("stub", WithCatalog(&stubCatalog{})) // no converter
	params := map[string]any{"port": 8080}

	_, _, err := GetOption[int64](v, params, "port", KindInt)
	assert.ErrorContains(t, err, "missing runtime dependency")

	_, err = GetOptionOr(v, params, "port", KindInt, func() int64 { return 0 })
	assert.ErrorContains(t, err, "missing runtime dependency")

	_, err = MandatoryOption[int64](v, params, "port", KindInt)
	assert.ErrorContains(t, err, "missing runtime dependency")
}

func TestGetOption_NilValueIsAbsent(t *testing.T) {
	v := newTestVerifier(&stubCatalog{})

	_, ok, err := GetOption[string](v, map[string]any{"host": nil}, "host", KindString)
	require.NoError(t, err)
	assert.False(t, ok)
}
