// pkg/interaction/secret.go

package interaction

import (
	"context"
	"fmt"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// IsTTY reports whether stdin is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret asks for hidden input (no terminal echo). Unlike the other
// prompts this always talks to the process terminal; it fails when stdin
// is not a TTY because raw mode is a terminal capability.
func ReadSecret(ctx context.Context, prompt string) (string, error) {
	logger := otelzap.Ctx(ctx)

	if !IsTTY() {
		return "", cerr.New("secret prompt failed: no terminal available")
	}

	fmt.Fprint(os.Stderr, prompt+PromptSeparator)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logger.Error("Failed to read secret input", zap.Error(err))
		return "", cerr.Wrap(err, "read secret")
	}

	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		logger.Warn("No input received for secret", zap.String("prompt", prompt))
	}
	return secret, nil
}

// ReadSecrets asks for count hidden inputs, numbering the prompts
// ("Unseal Key 1", "Unseal Key 2", ...).
func ReadSecrets(ctx context.Context, promptBase string, count int) ([]string, error) {
	if count <= 0 {
		return nil, cerr.Newf("count must be positive, got %d", count)
	}

	secrets := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		prompt := promptBase
		if count > 1 {
			prompt = fmt.Sprintf("%s %d", promptBase, i)
		}
		secret, err := ReadSecret(ctx, prompt)
		if err != nil {
			return nil, cerr.Wrapf(err, "error reading %q", prompt)
		}
		secrets = append(secrets, secret)
	}
	return secrets, nil
}
