// Package collect drives the interactive configuration dialogue: it
// prompts the operator field by field, validates every answer and
// commits accepted values into a ConfigMap.
package collect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter abstracts the operator console so the collector can be
// driven by a script in tests.
type Prompter interface {
	// ReadLine shows the prompt and blocks until a full line arrives.
	ReadLine(prompt string) (string, error)
	// ReadPassword shows the prompt and reads a line without echoing it.
	ReadPassword(prompt string) (string, error)
}

// ConsolePrompter reads from stdin and writes prompts to stdout.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewConsolePrompter creates a prompter over the process stdio.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		fd:  int(os.Stdin.Fd()),
	}
}

// ReadLine blocks until the operator submits a line. There is no
// timeout; installation waits for the operator.
func (p *ConsolePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword reads without echo when stdin is a terminal and falls
// back to a plain line read otherwise (piped input).
func (p *ConsolePrompter) ReadPassword(prompt string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.ReadLine(prompt)
	}
	fmt.Fprint(p.out, prompt)
	raw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
