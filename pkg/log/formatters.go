package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// JSONFormatter formats log entries as JSON.
type JSONFormatter struct {
	TimestampFormat string
}

// Format formats the entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	timestampFormat := time.RFC3339
	if f.TimestampFormat != "" {
		timestampFormat = f.TimestampFormat
	}
	data["timestamp"] = entry.Timestamp.Format(timestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	for k, v := range entry.Fields {
		// Don't overwrite standard fields
		if k != "timestamp" && k != "level" && k != "message" {
			data[k] = v
		}
	}

	return json.Marshal(data)
}

// TextFormatter formats log entries as human-readable text.
type TextFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// NewTextFormatter creates a new TextFormatter with sensible defaults.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000",
	}
}

// Format formats the entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	timestampFormat := "2006-01-02T15:04:05.000"
	if f.TimestampFormat != "" {
		timestampFormat = f.TimestampFormat
	}
	timestamp := entry.Timestamp.Format(timestampFormat)

	level := entry.Level.String()
	if !f.DisableColors {
		level = colorizeLevel(entry.Level)
		timestamp = colorDim + timestamp + colorReset
	}

	// Sort field keys for a stable line layout
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fieldParts []string
	for _, k := range keys {
		if !f.DisableColors {
			fieldParts = append(fieldParts, fmt.Sprintf("%s%s%s=%v", colorCyan, k, colorReset, entry.Fields[k]))
		} else {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
	}
	fields := ""
	if len(fieldParts) > 0 {
		fields = " " + strings.Join(fieldParts, " ")
	}

	line := fmt.Sprintf("%s %s %s%s\n", timestamp, level, entry.Message, fields)
	return []byte(line), nil
}

// Color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[90m"
)

// colorizeLevel adds color to log levels
func colorizeLevel(level Level) string {
	switch level {
	case DebugLevel:
		return colorBlue + "DBG" + colorReset
	case InfoLevel:
		return colorGreen + "INF" + colorReset
	case WarnLevel:
		return colorYellow + "WRN" + colorReset
	case ErrorLevel:
		return colorRed + "ERR" + colorReset
	case FatalLevel:
		return colorRed + "FTL" + colorReset
	default:
		return level.String() + colorReset
	}
}
