// pkg/interaction/confirm.go

package interaction

import (
	"context"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

const (
	DefaultYesPrompt = "Y/n"
	DefaultNoPrompt  = "y/N"
)

const (
	YesShort = "y"
	YesLong  = "yes"
	NoShort  = "n"
	NoLong   = "no"
)

// Confirmable is anything that can summarize itself for a confirmation
// prompt.
type Confirmable interface {
	Summary() string
}

// NormalizeYesNoInput reports whether the input is an affirmative
// response like "y" or "yes". It trims whitespace and lowercases input
// before comparison. The second return value is false for anything that
// is neither a yes nor a no.
func NormalizeYesNoInput(input string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case YesShort, YesLong:
		return true, true
	case NoShort, NoLong:
		return false, true
	}
	return false, false
}

// ReadYesNo asks a yes/no question. Empty input takes the default;
// anything that is not a recognizable yes or no is asked again.
func (p *Prompter) ReadYesNo(ctx context.Context, prompt string, defaultYes bool) (bool, error) {
	hint := DefaultYesPrompt
	if !defaultYes {
		hint = DefaultNoPrompt
	}
	label := fmt.Sprintf("%s [%s]", prompt, hint)

	return ReadValue(ctx, p, label, func(line string) (bool, error) {
		if strings.TrimSpace(line) == "" {
			return defaultYes, nil
		}
		if answer, ok := NormalizeYesNoInput(line); ok {
			return answer, nil
		}
		return false, cerr.Newf("please answer %q or %q", YesLong, NoLong)
	})
}

// Confirm shows an object's summary and asks whether the values are
// correct, defaulting to no.
func (p *Prompter) Confirm(ctx context.Context, c Confirmable) (bool, error) {
	if err := p.write(c.Summary() + "\n"); err != nil {
		return false, err
	}
	return p.ReadYesNo(ctx, "Are these values correct?", false)
}

func ReadYesNo(ctx context.Context, prompt string, defaultYes bool) (bool, error) {
	return stdio.ReadYesNo(ctx, prompt, defaultYes)
}

func Confirm(ctx context.Context, c Confirmable) (bool, error) {
	return stdio.Confirm(ctx, c)
}
