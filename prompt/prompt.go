// Package prompt provides interactive repair of failed verifications: a
// terminal prompter that collects values for the options a verification
// reported missing.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/camber-dev/camber-host-sdk/catalog"
	"github.com/camber-dev/camber-host-sdk/verify"
)

// ErrNotInteractive is returned when values are needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("not an interactive terminal")

// TerminalPrompter asks the user for missing option values.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal. A
// mode-bit check is not enough here: stdin attached to /dev/null is a
// character device too, yet prompting on it cannot work.
func (p *TerminalPrompter) IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// MissingOptions lists the option names a result reports as missing, in
// result order.
func MissingOptions(result verify.Result) []string {
	var names []string
	for _, defect := range result.Errors() {
		if defect.Code() != verify.CodeMissingOption {
			continue
		}
		names = append(names, defect.Parameters()...)
	}
	return names
}

// PromptForMissing asks for each option the result reports as missing and
// returns an amended copy of params. Enum-kinded options present a
// select, everything else a free-form input. The catalog definition is
// optional; without it every option prompts as free-form.
func (p *TerminalPrompter) PromptForMissing(result verify.Result, def *catalog.Definition, params map[string]any) (map[string]any, error) {
	amended := make(map[string]any, len(params))
	for key, value := range params {
		amended[key] = value
	}

	missing := MissingOptions(result)
	if len(missing) == 0 {
		return amended, nil
	}
	if !p.IsInteractive() {
		return nil, ErrNotInteractive
	}

	values := make([]string, len(missing))
	fields := make([]huh.Field, 0, len(missing))
	for i, name := range missing {
		opt, ok := lookupOption(def, name)
		if ok && opt.Kind == catalog.KindEnum {
			fields = append(fields, huh.NewSelect[string]().
				Title(name).
				Options(huh.NewOptions(opt.Enum...)...).
				Value(&values[i]))
			continue
		}

		input := huh.NewInput().Title(name).Value(&values[i])
		if ok && opt.Description != "" {
			input = input.Description(opt.Description)
		}
		fields = append(fields, input)
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return nil, fmt.Errorf("prompting for options: %w", err)
	}

	for i, name := range missing {
		amended[name] = values[i]
	}
	return amended, nil
}

func lookupOption(def *catalog.Definition, name string) (catalog.Option, bool) {
	if def == nil {
		return catalog.Option{}, false
	}
	for _, opt := range def.Options {
		if !opt.Pattern && opt.Name == name {
			return opt, true
		}
	}
	return catalog.Option{}, false
}
