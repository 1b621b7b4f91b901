package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotToken(t *testing.T) {
	valid := []string{
		"123456789:ABCdefGHIjklMNOpqrsTUVwxyz",
		"1:a",
		"987654321:AAE_x-9f0",
	}
	for _, s := range valid {
		assert.True(t, BotToken(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"abc:xyz",
		"123456789",
		":ABCdef",
		"123456789:",
		"123456789:ABC def",
		"x123456789:ABCdef",
		"123456789:ABCdef\n",
	}
	for _, s := range invalid {
		assert.False(t, BotToken(s), "expected invalid: %q", s)
	}
}

func TestTelegramID(t *testing.T) {
	assert.True(t, TelegramID("111"))
	assert.True(t, TelegramID("0"))
	assert.False(t, TelegramID(""))
	assert.False(t, TelegramID("12a"))
	assert.False(t, TelegramID("-12"))
	assert.False(t, TelegramID("12 "))
}

func TestNormalizeIDList(t *testing.T) {
	t.Run("trims whitespace per entry", func(t *testing.T) {
		ids, ok := NormalizeIDList(" 111, 222 ,333")
		assert.True(t, ok)
		assert.Equal(t, []string{"111", "222", "333"}, ids)
	})

	t.Run("rejects the whole list on one bad entry", func(t *testing.T) {
		_, ok := NormalizeIDList("111,abc")
		assert.False(t, ok)
	})

	t.Run("rejects empty entries", func(t *testing.T) {
		_, ok := NormalizeIDList("111,,222")
		assert.False(t, ok)

		_, ok = NormalizeIDList("")
		assert.False(t, ok)
	})
}

func TestURL(t *testing.T) {
	assert.True(t, URL("http://panel.local"))
	assert.True(t, URL("https://panel.example.com/api"))
	assert.False(t, URL("ftp://panel.local"))
	assert.False(t, URL("panel.example.com"))
	assert.False(t, URL(""))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("admin@example.com"))
	assert.True(t, Email("ops+alerts@mail.example.org"))
	assert.False(t, Email("admin@example.c"))
	assert.False(t, Email("admin@example"))
	assert.False(t, Email("admin.example.com"))
	assert.False(t, Email("@example.com"))
	assert.False(t, Email("admin@example.com extra"))
}

func TestDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"bot.2getpro.io",
		"a.b",
		"xn--e1afmkfd.xn--p1ai",
	}
	for _, s := range valid {
		assert.True(t, Domain(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"-example.com",
		"example-.com",
		"example..com",
		"exam ple.com",
		"example.com.",
		strings.Repeat("a", 64) + ".com",
	}
	for _, s := range invalid {
		assert.False(t, Domain(s), "expected invalid: %q", s)
	}
}

func TestSingleLine(t *testing.T) {
	assert.True(t, SingleLine("plain value"))
	assert.True(t, SingleLine("value=with=equals"))
	assert.False(t, SingleLine("two\nlines"))
	assert.False(t, SingleLine("cr\rhere"))
}
