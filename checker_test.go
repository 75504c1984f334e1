package hostsdk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hostsdk "github.com/camber-dev/camber-host-sdk"
	"github.com/camber-dev/camber-host-sdk/catalog"
	"github.com/camber-dev/camber-host-sdk/verify"
)

func ftpDefinition() *catalog.Definition {
	return &catalog.Definition{
		Scheme: "ftp",
		Title:  "FTP endpoint",
		Options: []catalog.Option{
			{Name: "host", Kind: catalog.KindString, Required: true},
			{Name: "port", Kind: catalog.KindInteger, Required: true},
			{Name: "passive", Kind: catalog.KindBoolean},
		},
	}
}

func TestConfigCheckerParametersOK(t *testing.T) {
	checker := hostsdk.NewConfigChecker("ftp")
	require.NoError(t, checker.Catalog().Register(ftpDefinition()))

	result := checker.Check(context.Background(), verify.ScopeParameters, map[string]any{
		"host": "ftp.example.com",
		"port": 21,
	})

	assert.True(t, result.OK())
	assert.Equal(t, verify.ScopeParameters, result.Scope())
}

func TestConfigCheckerDefectHandler(t *testing.T) {
	type seen struct {
		scheme string
		scope  verify.Scope
		code   verify.Code
	}
	var calls []seen

	checker := hostsdk.NewConfigChecker("ftp",
		hostsdk.WithDefectHandler(func(_ context.Context, scheme string, scope verify.Scope, defect verify.Error) {
			calls = append(calls, seen{scheme: scheme, scope: scope, code: defect.Code()})
		}),
	)
	require.NoError(t, checker.Catalog().Register(ftpDefinition()))

	result := checker.Check(context.Background(), verify.ScopeParameters, map[string]any{
		"host":    "ftp.example.com",
		"passive": "maybe",
	})

	require.Equal(t, verify.StatusError, result.Status())
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, "ftp", call.scheme)
		assert.Equal(t, verify.ScopeParameters, call.scope)
	}
	assert.Equal(t, verify.CodeMissingOption, calls[0].code)
	assert.Equal(t, verify.CodeIllegalOption, calls[1].code)
}

func TestConfigCheckerConnectivityUnsupportedByDefault(t *testing.T) {
	checker := hostsdk.NewConfigChecker("ftp")

	result := checker.Check(context.Background(), verify.ScopeConnectivity, nil)

	assert.Equal(t, verify.StatusUnsupported, result.Status())
}

func TestConfigCheckerConnectivityOption(t *testing.T) {
	called := false
	checker := hostsdk.NewConfigChecker("ftp",
		hostsdk.WithConnectivity(verify.ConnectivityCheckerFunc(func(ctx context.Context, params map[string]any) verify.Result {
			called = true
			return verify.WithStatusAndScope(verify.StatusOK, verify.ScopeConnectivity).Build()
		})),
	)

	result := checker.Check(context.Background(), verify.ScopeConnectivity, map[string]any{"host": "ftp.example.com"})

	assert.True(t, called)
	assert.True(t, result.OK())
}

func TestConfigCheckerRegistryReferences(t *testing.T) {
	checker := hostsdk.NewConfigChecker("ftp")
	require.NoError(t, checker.Registry().Register("myDialer", "dialer-object"))

	name, err := checker.Registry().Resolve("myDialer")
	require.NoError(t, err)
	assert.Equal(t, "dialer-object", name)
}
