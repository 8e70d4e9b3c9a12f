// pkg/interaction/choice.go

package interaction

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// NoDefault disables the default answer for ReadChoice and ReadSelect.
const NoDefault = -1

// ReadChoice asks the user to pick one of options by name and returns
// the zero-based index of the first option matching the trimmed input
// case-insensitively, in list order. When defaultIndex >= 0, empty input
// selects that option immediately. Input matching no option prints the
// valid options and asks again.
//
// Panics if defaultIndex >= len(options); ambiguous option sets are the
// caller's responsibility.
func (p *Prompter) ReadChoice(ctx context.Context, prompt string, options []string, defaultIndex int) (int, error) {
	if defaultIndex >= len(options) {
		panic("interaction: default index must be within the options slice")
	}

	label := choiceLabel(prompt, options, defaultIndex)
	return ReadValue(ctx, p, label, func(line string) (int, error) {
		ans := strings.TrimSpace(line)
		if ans == "" && defaultIndex >= 0 {
			return defaultIndex, nil
		}
		for i, opt := range options {
			if strings.EqualFold(ans, opt) {
				return i, nil
			}
		}
		return 0, cerr.Newf("%q is not a valid option (valid options: %s)", ans, strings.Join(options, ", "))
	})
}

// ReadSelect shows options as a numbered menu and asks for a choice
// number, returning the zero-based index. When defaultIndex >= 0, empty
// input selects that option. Non-numeric or out-of-range answers are
// explained and asked again. The menu is printed once, not per retry.
//
// Panics if defaultIndex >= len(options).
func (p *Prompter) ReadSelect(ctx context.Context, prompt string, options []string, defaultIndex int) (int, error) {
	if defaultIndex >= len(options) {
		panic("interaction: default index must be within the options slice")
	}

	var menu strings.Builder
	menu.WriteString(prompt + "\n")
	for i, opt := range options {
		fmt.Fprintf(&menu, "  %d) %s\n", i+1, opt)
	}
	if err := p.write(menu.String()); err != nil {
		return 0, err
	}

	label := "Enter choice number"
	if defaultIndex >= 0 {
		label = fmt.Sprintf("%s [%d]", label, defaultIndex+1)
	}
	return ReadValue(ctx, p, label, func(line string) (int, error) {
		ans := strings.TrimSpace(line)
		if ans == "" && defaultIndex >= 0 {
			return defaultIndex, nil
		}
		n, err := strconv.Atoi(ans)
		if err != nil {
			return 0, cerr.Newf("%q is not a valid option", ans)
		}
		if n < 1 || n > len(options) {
			return 0, cerr.Newf("%d is not a valid option (choose 1-%d)", n, len(options))
		}
		return n - 1, nil
	})
}

// choiceLabel renders the prompt with the options and any default, e.g.
// "Color (red/green/blue) [red]".
func choiceLabel(prompt string, options []string, defaultIndex int) string {
	var b strings.Builder
	if prompt != "" {
		b.WriteString(prompt + " ")
	}
	b.WriteString("(" + strings.Join(options, "/") + ")")
	if defaultIndex >= 0 {
		b.WriteString(" [" + options[defaultIndex] + "]")
	}
	return b.String()
}

func ReadChoice(ctx context.Context, prompt string, options []string, defaultIndex int) (int, error) {
	return stdio.ReadChoice(ctx, prompt, options, defaultIndex)
}

func ReadSelect(ctx context.Context, prompt string, options []string, defaultIndex int) (int, error) {
	return stdio.ReadSelect(ctx, prompt, options, defaultIndex)
}
