// Package validate holds the input format predicates used during
// installer configuration. Every predicate is pure, performs no I/O and
// matches the whole input string, never a substring.
package validate

import (
	"regexp"
	"strings"
)

var (
	botTokenRe   = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9_-]+$`)
	telegramIDRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	labelRe      = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
)

// BotToken reports whether s looks like a Telegram bot token
// (numeric bot ID, a colon, then the token body).
func BotToken(s string) bool {
	return botTokenRe.MatchString(s)
}

// TelegramID reports whether s is a numeric Telegram identifier.
func TelegramID(s string) bool {
	return telegramIDRe.MatchString(s)
}

// IDList reports whether s is a comma-separated list of Telegram IDs.
// Entries are trimmed before checking; the whole list is rejected when
// any entry fails.
func IDList(s string) bool {
	_, ok := NormalizeIDList(s)
	return ok
}

// NormalizeIDList splits s on commas, trims each entry and validates it
// as a Telegram ID. It returns the trimmed entries and whether the whole
// list is valid.
func NormalizeIDList(s string) ([]string, bool) {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !TelegramID(p) {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// URL reports whether s begins with an http or https scheme.
func URL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Email reports whether s is a local@domain.tld address with a TLD of at
// least two letters.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Domain reports whether s is a dot-separated sequence of RFC-1035-style
// labels: 1-63 alphanumerics or hyphens each, no leading or trailing
// hyphen.
func Domain(s string) bool {
	if s == "" {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if !labelRe.MatchString(label) {
			return false
		}
	}
	return true
}

// SingleLine reports whether s is free of newline characters. Values
// with embedded newlines would corrupt the rendered document, so they
// are rejected at validation time.
func SingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}
