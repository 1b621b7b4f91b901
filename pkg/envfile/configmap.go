// Package envfile renders the collected installer answers into the
// KEY=VALUE environment document the bot stack consumes, and reads such
// documents back.
package envfile

import "fmt"

// ConfigMap holds collected installer answers keyed by environment
// variable name. It is created empty, populated by the collector and
// consumed once by the renderer; it is never shared between goroutines.
type ConfigMap map[string]string

// NewConfigMap returns an empty ConfigMap.
func NewConfigMap() ConfigMap {
	return ConfigMap{}
}

// Set stores a value under key.
func (m ConfigMap) Set(key, value string) {
	m[key] = value
}

// Get returns the value for key and whether it is present.
func (m ConfigMap) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Has reports whether key is present.
func (m ConfigMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// MissingKeyError is returned when a required key is absent at render
// time.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required configuration key %s is missing", e.Key)
}

// InvalidValueError is returned when a value would corrupt the rendered
// document.
type InvalidValueError struct {
	Key    string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Reason)
}
