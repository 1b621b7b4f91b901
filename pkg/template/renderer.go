// Package template fills key placeholders in compose and service-unit
// templates from a rendered environment document. Every substituted
// value is treated as an opaque string; nothing is re-interpreted.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Renderer substitutes {{env:KEY}} placeholders with values from a
// KEY=VALUE map. A missing key without a default filter is an error.
type Renderer struct {
	Values map[string]string
}

// NewRenderer creates a renderer over the given values.
func NewRenderer(values map[string]string) *Renderer {
	return &Renderer{Values: values}
}

// RenderString replaces every placeholder in input.
func (r *Renderer) RenderString(input string) (string, error) {
	lines := strings.Split(input, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		rendered, err := r.renderLine(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, rendered)
	}
	return strings.Join(out, "\n"), nil
}

func (r *Renderer) renderLine(line string) (string, error) {
	var b strings.Builder
	rest := line
	for {
		loc := placeholderRe.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:loc[0]])
		match := rest[loc[0]:loc[1]]
		rest = rest[loc[1]:]

		inner := strings.TrimSpace(match[2 : len(match)-2])
		value, err := r.eval(inner)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
	}
}

func (r *Renderer) eval(expr string) (string, error) {
	parts := splitPipeline(expr)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty placeholder")
	}
	head := strings.TrimSpace(parts[0])
	if !strings.HasPrefix(head, "env:") {
		return "", fmt.Errorf("unknown placeholder head: %s", head)
	}
	key := strings.TrimSpace(strings.TrimPrefix(head, "env:"))

	value, ok := r.Values[key]
	for _, seg := range parts[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, arg := splitFilter(seg)
		switch name {
		case "default":
			if !ok || value == "" {
				value = unquote(arg)
				ok = true
			}
		default:
			return "", fmt.Errorf("unknown filter: %s", name)
		}
	}
	if !ok {
		return "", fmt.Errorf("missing env:%s", key)
	}
	return value, nil
}

// splitPipeline splits on unquoted '|' so default arguments may contain
// the pipe character.
func splitPipeline(s string) []string {
	var parts []string
	cur := &strings.Builder{}
	inSingle := false
	inDouble := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			cur.WriteByte(ch)
			continue
		}
		if ch == '"' && !inSingle {
			inDouble = !inDouble
			cur.WriteByte(ch)
			continue
		}
		if ch == '|' && !inSingle && !inDouble {
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(ch)
	}
	if cur.Len() > 0 {
		parts = append(parts, strings.TrimSpace(cur.String()))
	}
	return parts
}

func splitFilter(seg string) (string, string) {
	// name[: arg]
	idx := strings.Index(seg, ":")
	if idx < 0 {
		return strings.TrimSpace(seg), ""
	}
	return strings.TrimSpace(seg[:idx]), strings.TrimSpace(seg[idx+1:])
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
