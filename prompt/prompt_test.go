package prompt_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camber-dev/camber-host-sdk/prompt"
	"github.com/camber-dev/camber-host-sdk/verify"
)

func missingResult(names ...string) verify.Result {
	builder := verify.WithStatusAndScope(verify.StatusOK, verify.ScopeParameters)
	for _, name := range names {
		builder.Error(verify.WithMissingOption(name).Build())
	}
	return builder.Build()
}

func TestMissingOptions(t *testing.T) {
	result := verify.WithStatusAndScope(verify.StatusOK, verify.ScopeParameters).
		Error(verify.WithUnknownOption("bogus").Build()).
		Error(verify.WithMissingOption("port").Build()).
		Error(verify.WithMissingOption("host").Build()).
		Build()

	assert.Equal(t, []string{"port", "host"}, prompt.MissingOptions(result))
}

func TestPromptForMissing_NothingMissing(t *testing.T) {
	p := prompt.NewTerminalPrompter()
	params := map[string]any{"host": "example.com"}

	amended, err := p.PromptForMissing(missingResult(), nil, params)

	require.NoError(t, err)
	assert.Equal(t, params, amended)

	amended["host"] = "mutated"
	assert.Equal(t, "example.com", params["host"], "the input map must not be shared")
}

func TestPromptForMissing_NotInteractive(t *testing.T) {
	// Test binaries run with stdin detached from a terminal, so the
	// prompter must refuse rather than hang.
	p := prompt.NewTerminalPrompter()

	_, err := p.PromptForMissing(missingResult("port"), nil, nil)

	assert.ErrorIs(t, err, prompt.ErrNotInteractive)
}

func TestIsInteractive_NullDevice(t *testing.T) {
	// /dev/null is a character device, but no terminal. The prompter
	// must not mistake it for one.
	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devNull.Close()

	stdin := os.Stdin
	os.Stdin = devNull
	defer func() { os.Stdin = stdin }()

	p := prompt.NewTerminalPrompter()

	assert.False(t, p.IsInteractive())

	_, err = p.PromptForMissing(missingResult("port"), nil, nil)
	assert.ErrorIs(t, err, prompt.ErrNotInteractive)
}
