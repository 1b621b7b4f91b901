// Package audit keeps an append-only JSON-lines trail of installer
// actions so an operator can reconstruct what a run changed.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Outcome of an audited action.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Event is one audited installer action.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	Target    string            `json:"target,omitempty"`
	Outcome   string            `json:"outcome"`
	Details   map[string]string `json:"details,omitempty"`
}

// Recorder appends events to a file. The file is owner read/write only
// since targets may reveal installation layout.
type Recorder struct {
	mu   sync.Mutex
	path string
}

// NewRecorder creates a recorder appending to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record appends one event, stamping it with the current time when the
// caller left Timestamp zero.
func (r *Recorder) Record(ev Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	line, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding audit event: %w", err)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("writing audit event: %w", err)
	}
	return nil
}

// Success records a successful action.
func (r *Recorder) Success(action, target string, details map[string]string) error {
	return r.Record(Event{Action: action, Target: target, Outcome: OutcomeSuccess, Details: details})
}

// Failure records a failed action with its error.
func (r *Recorder) Failure(action, target string, cause error) error {
	details := map[string]string{}
	if cause != nil {
		details["error"] = cause.Error()
	}
	return r.Record(Event{Action: action, Target: target, Outcome: OutcomeFailure, Details: details})
}
