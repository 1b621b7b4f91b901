package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a KEY=VALUE document back into a ConfigMap. Comment and
// blank lines are skipped. Values are taken verbatim after the first
// '=', so values containing '=' round-trip unchanged.
func Parse(r io.Reader) (ConfigMap, error) {
	cm := NewConfigMap()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("line %d: not a KEY=VALUE pair: %q", lineNo, line)
		}
		cm.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cm, nil
}

// ParseFile parses the document at path.
func ParseFile(path string) (ConfigMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
