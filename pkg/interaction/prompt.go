// pkg/interaction/prompt.go

package interaction

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// PromptSeparator follows every non-empty prompt so the answer appears
// on the same line.
const PromptSeparator = ": "

// defaultRetryMessage is printed when a rule rejects input without
// providing its own explanation.
const defaultRetryMessage = "Invalid input. Please try again."

// Rule validates and converts one stripped line of input. A nil error
// means the line was accepted; a non-nil error triggers a re-prompt and
// its message is shown to the user.
type Rule[T any] func(line string) (T, error)

// ReadValue repeatedly prompts until rule accepts a line of input.
//
// Each iteration writes the prompt (followed by PromptSeparator; an
// empty prompt writes nothing), reads one line, strips the trailing line
// terminator, and applies rule. Rule failures are explained on the
// output stream and retried indefinitely. Read or write failures on the
// underlying streams, including end of input, terminate the loop
// immediately and are returned to the caller.
func ReadValue[T any](ctx context.Context, p *Prompter, prompt string, rule Rule[T]) (T, error) {
	logger := otelzap.Ctx(ctx)
	var zero T

	for {
		if prompt != "" {
			if err := p.write(prompt + PromptSeparator); err != nil {
				logger.Error("Failed to write prompt", zap.String("prompt", prompt), zap.Error(err))
				return zero, err
			}
		}

		line, err := p.readLine()
		if err != nil {
			logger.Error("Failed to read user input", zap.String("prompt", prompt), zap.Error(err))
			return zero, err
		}

		value, verr := rule(line)
		if verr == nil {
			logger.Debug("User input accepted", zap.String("prompt", prompt))
			return value, nil
		}

		logger.Debug("User input rejected", zap.String("prompt", prompt), zap.Error(verr))
		msg := verr.Error()
		if msg == "" {
			msg = defaultRetryMessage
		}
		if err := p.write(msg + "\n"); err != nil {
			return zero, err
		}
	}
}

// ReadString prompts once and returns the line with its terminator
// stripped. Empty input is a valid answer.
func (p *Prompter) ReadString(ctx context.Context, prompt string) (string, error) {
	return ReadValue(ctx, p, prompt, func(line string) (string, error) {
		return line, nil
	})
}

// ReadStringNonEmpty keeps asking until it gets a non-empty line.
func (p *Prompter) ReadStringNonEmpty(ctx context.Context, prompt string) (string, error) {
	return ReadValue(ctx, p, prompt, RuleString(ValidateNonEmpty))
}

// ReadWithDefault prompts with the default shown in brackets and
// returns it when the user just hits enter.
func (p *Prompter) ReadWithDefault(ctx context.Context, prompt, defaultValue string) (string, error) {
	label := fmt.Sprintf("%s [%s]", prompt, defaultValue)
	return ReadValue(ctx, p, label, func(line string) (string, error) {
		if line == "" {
			return defaultValue, nil
		}
		return line, nil
	})
}

// ReadValidated keeps asking until every validator passes, then returns
// the accepted line.
func (p *Prompter) ReadValidated(ctx context.Context, prompt string, validators ...func(string) error) (string, error) {
	return ReadValue(ctx, p, prompt, RuleString(validators...))
}

// Package-level variants of the prompts above, reading from os.Stdin
// and writing to os.Stderr.

func ReadString(ctx context.Context, prompt string) (string, error) {
	return stdio.ReadString(ctx, prompt)
}

func ReadStringNonEmpty(ctx context.Context, prompt string) (string, error) {
	return stdio.ReadStringNonEmpty(ctx, prompt)
}

func ReadWithDefault(ctx context.Context, prompt, defaultValue string) (string, error) {
	return stdio.ReadWithDefault(ctx, prompt, defaultValue)
}

func ReadValidated(ctx context.Context, prompt string, validators ...func(string) error) (string, error) {
	return stdio.ReadValidated(ctx, prompt, validators...)
}
