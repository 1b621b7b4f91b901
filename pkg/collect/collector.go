package collect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/2getpro/installer/pkg/crypto"
	"github.com/2getpro/installer/pkg/envfile"
	"github.com/2getpro/installer/pkg/validate"
)

const (
	generatedPasswordLength = 25
	minPasswordLength       = 8
)

// promptState is the per-field dialogue state: a field is prompted,
// its answer validated, and on rejection prompted again until accepted.
type promptState int

const (
	statePrompting promptState = iota
	stateValidating
	stateAccepted
)

var (
	errorMark = color.New(color.FgRed, color.Bold).Sprint("✗")
	infoMark  = color.New(color.FgCyan).Sprint("•")
)

// TooManyAttemptsError is returned when a retry ceiling is configured
// and the operator exhausts it for one field.
type TooManyAttemptsError struct {
	Key      string
	Attempts int
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("no valid value for %s after %d attempts", e.Key, e.Attempts)
}

// Collector runs the installation dialogue. It owns the ConfigMap it
// builds and hands it to the caller when every field is accepted.
type Collector struct {
	prompter Prompter
	out      io.Writer

	// maxAttempts bounds re-prompting per field; 0 means unbounded,
	// matching the historical installer behavior.
	maxAttempts int

	randomPassword func(length int) (string, error)
}

// Option configures a Collector.
type Option func(*Collector)

// WithOutput redirects operator-facing messages.
func WithOutput(w io.Writer) Option {
	return func(c *Collector) { c.out = w }
}

// WithMaxAttempts sets a retry ceiling per field; 0 keeps retries
// unbounded.
func WithMaxAttempts(n int) Option {
	return func(c *Collector) { c.maxAttempts = n }
}

// New creates a collector reading answers from the given prompter.
func New(prompter Prompter, opts ...Option) *Collector {
	c := &Collector{
		prompter:       prompter,
		out:            os.Stdout,
		randomPassword: crypto.RandomPassword,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run asks every field in order and returns the completed ConfigMap.
// It fails only on console errors or an exhausted retry ceiling; a
// rejected answer is re-prompted, never fatal.
func (c *Collector) Run(fields []Field) (envfile.ConfigMap, error) {
	cm := envfile.NewConfigMap()
	for _, f := range fields {
		if err := c.collect(f, cm); err != nil {
			return nil, err
		}
	}
	return cm, nil
}

func (c *Collector) collect(f Field, cm envfile.ConfigMap) error {
	switch f.Kind {
	case Password:
		return c.collectPassword(f, cm)
	case Toggle:
		return c.collectToggle(f, cm)
	default:
		return c.collectValue(f, cm)
	}
}

// collectValue runs the Prompting -> Validating -> Accepted machine for
// one field.
func (c *Collector) collectValue(f Field, cm envfile.ConfigMap) error {
	var (
		st       = statePrompting
		raw      string
		accepted string
		attempts int
	)
	for st != stateAccepted {
		switch st {
		case statePrompting:
			line, err := c.prompter.ReadLine(promptText(f))
			if err != nil {
				return fmt.Errorf("reading %s: %w", f.Key, err)
			}
			raw = line
			st = stateValidating

		case stateValidating:
			value, ok := normalize(f, strings.TrimSpace(raw))
			if ok {
				accepted = value
				st = stateAccepted
				break
			}
			attempts++
			c.reject(f)
			if c.maxAttempts > 0 && attempts >= c.maxAttempts {
				return &TooManyAttemptsError{Key: f.Key, Attempts: attempts}
			}
			st = statePrompting
		}
	}
	cm.Set(f.Key, accepted)
	return nil
}

func (c *Collector) collectPassword(f Field, cm envfile.ConfigMap) error {
	attempts := 0
	for {
		input, err := c.prompter.ReadPassword(promptText(f))
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Key, err)
		}
		input = strings.TrimSpace(input)

		if input == "" {
			generated, err := c.randomPassword(generatedPasswordLength)
			if err != nil {
				return fmt.Errorf("generating %s: %w", f.Key, err)
			}
			fmt.Fprintf(c.out, "%s Generated %s: %s — store it somewhere safe.\n", infoMark, f.Key, generated)
			cm.Set(f.Key, generated)
			return nil
		}

		if len(input) >= minPasswordLength && validate.SingleLine(input) {
			cm.Set(f.Key, input)
			return nil
		}

		attempts++
		fmt.Fprintf(c.out, "%s Password must be at least %d characters (or empty to generate one).\n", errorMark, minPasswordLength)
		if c.maxAttempts > 0 && attempts >= c.maxAttempts {
			return &TooManyAttemptsError{Key: f.Key, Attempts: attempts}
		}
	}
}

func (c *Collector) collectToggle(f Field, cm envfile.ConfigMap) error {
	attempts := 0
	for {
		line, err := c.prompter.ReadLine(togglePrompt(f))
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Key, err)
		}
		enabled, ok := parseYesNo(strings.TrimSpace(line), f.Default == "true")
		if !ok {
			attempts++
			fmt.Fprintf(c.out, "%s Please answer y or n.\n", errorMark)
			if c.maxAttempts > 0 && attempts >= c.maxAttempts {
				return &TooManyAttemptsError{Key: f.Key, Attempts: attempts}
			}
			continue
		}

		if !enabled {
			cm.Set(f.Key, "false")
			return nil
		}
		cm.Set(f.Key, "true")
		for _, sub := range f.Sub {
			if err := c.collect(sub, cm); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *Collector) reject(f Field) {
	hint := f.Hint
	if hint == "" {
		hint = "a non-empty single-line value is required"
	}
	fmt.Fprintf(c.out, "%s Invalid %s: %s.\n", errorMark, f.Key, hint)
}

// Valid reports whether input satisfies the field's format rule. Used
// by non-interactive callers that already hold a value.
func Valid(f Field, input string) bool {
	switch f.Kind {
	case Password:
		return len(input) >= minPasswordLength && validate.SingleLine(input)
	case Toggle:
		return input == "true" || input == "false"
	default:
		_, ok := normalize(f, input)
		return ok
	}
}

// normalize validates trimmed input for a field and returns the value
// to store.
func normalize(f Field, input string) (string, bool) {
	if input == "" {
		if f.Default != "" {
			return f.Default, true
		}
		if f.Optional {
			return "", true
		}
		return "", false
	}

	switch f.Kind {
	case Token:
		return input, validate.BotToken(input)
	case IDList:
		ids, ok := validate.NormalizeIDList(input)
		if !ok {
			return "", false
		}
		return strings.Join(ids, ","), true
	case URL:
		return input, validate.URL(input)
	case Email:
		return input, validate.Email(input)
	case Domain:
		return input, validate.Domain(input)
	default:
		return input, validate.SingleLine(input)
	}
}

func promptText(f Field) string {
	if f.Default != "" && f.Kind != Toggle {
		return fmt.Sprintf("%s [%s]: ", f.Prompt, f.Default)
	}
	return f.Prompt + ": "
}

func togglePrompt(f Field) string {
	if f.Default == "true" {
		return f.Prompt + "? [Y/n]: "
	}
	return f.Prompt + "? [y/N]: "
}

func parseYesNo(input string, def bool) (value, ok bool) {
	switch strings.ToLower(input) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
