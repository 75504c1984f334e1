package verify

import "testing"

func TestErrorBuilder_IllegalOption(t *testing.T) {
	err := WithIllegalOption("mode", "sideways").
		Detail(DetailEnumValues, []string{"up", "down"}).
		Build()

	if err.Code() != CodeIllegalOption {
		t.Errorf("Code() = %v, want ILLEGAL_OPTION", err.Code())
	}
	if got := err.Parameters(); len(got) != 1 || got[0] != "mode" {
		t.Errorf("Parameters() = %v, want [mode]", got)
	}
	if value, ok := err.Detail(DetailValue); !ok || value != "sideways" {
		t.Errorf("Detail(value) = %v, %v", value, ok)
	}
	choices, ok := err.Detail(DetailEnumValues)
	if !ok {
		t.Fatal("Detail(enum.values) missing")
	}
	literals, ok := choices.([]string)
	if !ok || len(literals) != 2 || literals[0] != "up" || literals[1] != "down" {
		t.Errorf("Detail(enum.values) = %v, want [up down]", choices)
	}
}

func TestErrorBuilder_Describe(t *testing.T) {
	err := NewError(CodeInternal).Describe("missing %s", "runtime").Build()

	if err.Description() != "missing runtime" {
		t.Errorf("Description() = %q", err.Description())
	}
	if len(err.Parameters()) != 0 {
		t.Errorf("Parameters() = %v, want empty", err.Parameters())
	}
}

func TestError_DetailsReturnsCopy(t *testing.T) {
	err := WithIllegalOption("port", "nope").Build()

	details := err.Details()
	details[DetailValue] = "mutated"

	if value, _ := err.Detail(DetailValue); value != "nope" {
		t.Error("mutating the returned map must not affect the error")
	}
}
