// pkg/interaction/custom.go

package interaction

import (
	"context"
	"encoding"
	"strconv"
	"time"

	cerr "github.com/cockroachdb/errors"
)

// ReadCustomNonEmpty keeps asking until parse accepts a non-empty line,
// then returns the parsed value. Parse failures are reported to the user
// with the parser's own error message before re-prompting.
func ReadCustomNonEmpty[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	return ReadValue(ctx, p, prompt, func(line string) (T, error) {
		var zero T
		if line == "" {
			return zero, cerr.New("input must not be empty")
		}
		v, err := parse(line)
		if err != nil {
			return zero, cerr.Wrapf(err, "%q is not valid", line)
		}
		return v, nil
	})
}

// ReadText fills v from one non-empty line of input via its
// encoding.TextUnmarshaler implementation, re-prompting on failure.
func ReadText(ctx context.Context, p *Prompter, prompt string, v encoding.TextUnmarshaler) error {
	_, err := ReadValue(ctx, p, prompt, func(line string) (struct{}, error) {
		if line == "" {
			return struct{}{}, cerr.New("input must not be empty")
		}
		if err := v.UnmarshalText([]byte(line)); err != nil {
			return struct{}{}, cerr.Wrapf(err, "%q is not valid", line)
		}
		return struct{}{}, nil
	})
	return err
}

// ReadInt keeps asking until it gets a base-10 integer.
func (p *Prompter) ReadInt(ctx context.Context, prompt string) (int, error) {
	return ReadCustomNonEmpty(ctx, p, prompt, strconv.Atoi)
}

// ReadDuration keeps asking until it gets a time.ParseDuration value
// such as "90s" or "1h30m".
func (p *Prompter) ReadDuration(ctx context.Context, prompt string) (time.Duration, error) {
	return ReadCustomNonEmpty(ctx, p, prompt, time.ParseDuration)
}

func ReadInt(ctx context.Context, prompt string) (int, error) {
	return stdio.ReadInt(ctx, prompt)
}

func ReadDuration(ctx context.Context, prompt string) (time.Duration, error) {
	return stdio.ReadDuration(ctx, prompt)
}
