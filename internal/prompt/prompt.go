package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive input. Echoed reads come from a buffered
// reader; hidden reads use the terminal's no-echo mode when input is a
// real terminal and fall back to a plain line read otherwise (pipes, tests).
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Line prints the label and reads one echoed line, trimmed of surrounding
// whitespace.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Secret prints the label and reads one line without echoing it back.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}

	// Not a terminal: read a plain line. The password is taken verbatim up
	// to the newline, so leading/trailing spaces survive.
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Interactive reports whether in is attached to a terminal.
func (p *Prompter) Interactive() bool {
	f, ok := p.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
