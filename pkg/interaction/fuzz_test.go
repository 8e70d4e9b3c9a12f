package interaction

import (
	"strings"
	"testing"
)

func FuzzNormalizeYesNoInput(f *testing.F) {
	f.Add("yes")
	f.Add("no")
	f.Add("Y")
	f.Add("n")
	f.Add("  yEs ")
	f.Add("  ")
	f.Add("not-a-valid-answer")

	f.Fuzz(func(t *testing.T, input string) {
		answer, ok := NormalizeYesNoInput(input)
		if answer && !ok {
			t.Errorf("affirmative answer without recognition for %q", input)
		}
	})
}

func FuzzStripLineEnding(f *testing.F) {
	f.Add("hello\n")
	f.Add("hello\r\n")
	f.Add("\n")
	f.Add("")
	f.Add("no terminator")
	f.Add("inner\nkept\n")

	f.Fuzz(func(t *testing.T, s string) {
		got := stripLineEnding(s)
		if !strings.HasPrefix(s, got) {
			t.Errorf("stripped line is not a prefix of input: %q -> %q", s, got)
		}
		if d := len(s) - len(got); d > 2 {
			t.Errorf("stripped more than one terminator: %q -> %q", s, got)
		}
		if strings.HasSuffix(s, "\n") && len(got) == len(s) {
			t.Errorf("terminator survived: %q", s)
		}
	})
}

func FuzzValidateNonEmpty(f *testing.F) {
	f.Add("")
	f.Add("   ")
	f.Add("hello")
	f.Add("\t")

	f.Fuzz(func(t *testing.T, s string) {
		err := ValidateNonEmpty(s)
		if (err != nil) != (s == "") {
			t.Errorf("ValidateNonEmpty(%q) = %v", s, err)
		}
	})
}
