package verify

import (
	"fmt"
	"strings"
)

// Scope selects which kind of verification Verify performs.
type Scope int

const (
	// ScopeParameters checks the static shape of the configuration
	// against the catalog schema for the resolved scheme.
	ScopeParameters Scope = iota

	// ScopeConnectivity performs a live probe against the configured
	// target using the verifier's connectivity checker.
	ScopeConnectivity
)

func (s Scope) String() string {
	switch s {
	case ScopeParameters:
		return "parameters"
	case ScopeConnectivity:
		return "connectivity"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope converts the textual form back into a Scope.
func ParseScope(text string) (Scope, error) {
	switch strings.ToLower(text) {
	case "parameters":
		return ScopeParameters, nil
	case "connectivity":
		return ScopeConnectivity, nil
	}
	return 0, fmt.Errorf("unknown verification scope %q", text)
}

// Status is the overall outcome of a verification.
type Status int

const (
	// StatusOK means no defects were found.
	StatusOK Status = iota

	// StatusError means at least one defect was found, or the
	// verification itself could not run.
	StatusError

	// StatusUnsupported means the requested scope is not implemented
	// by this verifier.
	StatusUnsupported
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusUnsupported:
		return "unsupported"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
