package envfile

import (
	"fmt"
	"strings"

	"github.com/2getpro/installer/pkg/crypto"
	"github.com/2getpro/installer/pkg/validate"
)

// secretBytes is the raw length of generated signing secrets; they are
// emitted hex-encoded, so twice as many characters.
const secretBytes = 32

// Line is one KEY=VALUE pair of the rendered document.
type Line struct {
	Key   string
	Value string
}

// RenderedGroup is a banner with its rendered lines.
type RenderedGroup struct {
	Banner string
	Lines  []Line
}

// Document is a fully rendered environment document, ready to be
// written.
type Document struct {
	Groups []RenderedGroup
}

// Renderer turns a ConfigMap into a Document following a fixed schema.
type Renderer struct {
	schema Schema

	// randomHex is swappable for tests; defaults to crypto.RandomHex.
	randomHex func(n int) (string, error)
}

// NewRenderer creates a renderer over the given schema. A nil schema
// uses DefaultSchema.
func NewRenderer(schema Schema) *Renderer {
	if schema == nil {
		schema = DefaultSchema()
	}
	return &Renderer{schema: schema, randomHex: crypto.RandomHex}
}

// Render resolves every schema entry against the ConfigMap. A required
// operator key that is absent aborts the render; nothing is written in
// that case because the caller only receives an error.
func (r *Renderer) Render(cm ConfigMap) (*Document, error) {
	doc := &Document{}
	for _, group := range r.schema {
		rg := RenderedGroup{Banner: group.Banner}
		for _, entry := range group.Entries {
			value, err := r.resolve(entry, cm)
			if err != nil {
				return nil, err
			}
			rg.Lines = append(rg.Lines, Line{Key: entry.Key, Value: value})
		}
		doc.Groups = append(doc.Groups, rg)
	}
	return doc, nil
}

func (r *Renderer) resolve(entry Entry, cm ConfigMap) (string, error) {
	switch entry.Kind {
	case KindFixed:
		return entry.Default, nil
	case KindSecret:
		secret, err := r.randomHex(secretBytes)
		if err != nil {
			return "", fmt.Errorf("generating %s: %w", entry.Key, err)
		}
		return secret, nil
	default:
		value, ok := cm.Get(entry.Key)
		// A required key that is present but empty must not render as
		// KEY=; it is treated exactly like an absent key.
		if entry.Required && (!ok || value == "") {
			return "", &MissingKeyError{Key: entry.Key}
		}
		if !ok {
			return entry.Default, nil
		}
		if !validate.SingleLine(value) {
			return "", &InvalidValueError{Key: entry.Key, Reason: "value contains a newline"}
		}
		return value, nil
	}
}

// String serializes the document: a comment banner per group, then its
// KEY=VALUE lines, groups separated by a blank line. Values are written
// verbatim, without quoting.
func (d *Document) String() string {
	var b strings.Builder
	for i, group := range d.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n", group.Banner)
		for _, line := range group.Lines {
			fmt.Fprintf(&b, "%s=%s\n", line.Key, line.Value)
		}
	}
	return b.String()
}

// Lookup returns the rendered value for key.
func (d *Document) Lookup(key string) (string, bool) {
	for _, group := range d.Groups {
		for _, line := range group.Lines {
			if line.Key == key {
				return line.Value, true
			}
		}
	}
	return "", false
}
