// pkg/interaction/reader.go

// Package interaction gets data from a human on a command line: it prints
// a prompt, reads one buffered line of input, validates or parses it, and
// asks again until the answer is acceptable. I/O failures on the
// underlying streams are never retried.
package interaction

import (
	"bufio"
	"io"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Prompter owns an input/output stream pair for the duration of a
// prompting sequence. Prompts and diagnostics go to the output stream,
// answers are read line by line from the input stream. A Prompter must
// not be shared across concurrent prompts; use one per stream pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps the given streams in a Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Default returns a Prompter on os.Stdin and os.Stderr. Prompts go to
// stderr to preserve stdout for automation.
func Default() *Prompter {
	return NewPrompter(os.Stdin, os.Stderr)
}

// stdio is the shared prompter behind the package-level Read* helpers.
var stdio = Default()

// write sends text to the output stream. Writes are unbuffered so the
// prompt is visible before the next read blocks.
func (p *Prompter) write(text string) error {
	if _, err := io.WriteString(p.out, text); err != nil {
		return cerr.Wrap(err, "write prompt")
	}
	return nil
}

// readLine blocks until one line of input is available and returns it
// with the trailing line terminator stripped. End of input before any
// byte is an error; a final unterminated line is returned as-is.
func (p *Prompter) readLine() (string, error) {
	text, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || text == "" {
			return "", cerr.Wrap(err, "read input")
		}
		// last line of the stream has no terminator; use it
	}
	return stripLineEnding(text), nil
}

// stripLineEnding removes a single trailing \n or \r\n. Other
// whitespace is preserved; rules that match on trimmed input trim it
// themselves.
func stripLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
