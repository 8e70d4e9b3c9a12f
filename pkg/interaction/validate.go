// pkg/interaction/validate.go

package interaction

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RuleString builds a string Rule that accepts the line once every
// validator passes. With no validators any line is accepted.
func RuleString(validators ...func(string) error) Rule[string] {
	return func(line string) (string, error) {
		for _, v := range validators {
			if err := v(line); err != nil {
				return "", err
			}
		}
		return line, nil
	}
}

// ValidateNonEmpty rejects a zero-length line. Whitespace counts as
// input; callers wanting trimmed semantics should trim in their own
// validator.
func ValidateNonEmpty(input string) error {
	if input == "" {
		return cerr.New("input must not be empty")
	}
	return nil
}

// ValidateTag adapts a go-playground/validator tag expression (for
// example "email", "ip", or "hostname_rfc1123") into a validator usable
// with ReadValidated and RuleString.
func ValidateTag(tag string) func(string) error {
	return func(input string) error {
		if err := validate.Var(input, tag); err != nil {
			return cerr.Newf("%q does not satisfy %q", input, tag)
		}
		return nil
	}
}
