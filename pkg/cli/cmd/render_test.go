package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2getpro/installer/pkg/envfile"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeAnswers(t, `
BOT_TOKEN: "123456789:ABCdefGHI"
ADMIN_IDS: " 111,222 "
PANEL_API_URL: https://panel.example.com
DB_PASSWORD: super-secret
`)

	cm, err := loadAnswers(path)
	require.NoError(t, err)

	v, _ := cm.Get(envfile.KeyBotToken)
	assert.Equal(t, "123456789:ABCdefGHI", v)

	// Values are trimmed like interactive input
	v, _ = cm.Get(envfile.KeyAdminIDs)
	assert.Equal(t, "111,222", v)
}

func TestLoadAnswersRejectsMalformedYAML(t *testing.T) {
	path := writeAnswers(t, "nested:\n  maps: [not, allowed\n")
	_, err := loadAnswers(path)
	assert.Error(t, err)
}

func TestValidateAnswers(t *testing.T) {
	t.Run("accepts well-formed answers", func(t *testing.T) {
		cm := envfile.NewConfigMap()
		cm.Set(envfile.KeyBotToken, "123456789:ABCdefGHI")
		cm.Set(envfile.KeyAdminIDs, "111,222")
		cm.Set(envfile.KeyPanelAPIURL, "https://panel.example.com")
		cm.Set(envfile.KeyDBPassword, "super-secret")

		assert.NoError(t, validateAnswers(cm))
	})

	t.Run("rejects a bad token", func(t *testing.T) {
		cm := envfile.NewConfigMap()
		cm.Set(envfile.KeyBotToken, "abc:xyz")

		err := validateAnswers(cm)
		require.Error(t, err)
		assert.Contains(t, err.Error(), envfile.KeyBotToken)
	})

	t.Run("rejects an empty required answer", func(t *testing.T) {
		cm := envfile.NewConfigMap()
		cm.Set(envfile.KeyBotToken, "")

		err := validateAnswers(cm)
		require.Error(t, err)
		assert.Contains(t, err.Error(), envfile.KeyBotToken)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		cm := envfile.NewConfigMap()
		cm.Set(envfile.KeyDBPassword, "short")

		assert.Error(t, validateAnswers(cm))
	})

	t.Run("rejects a bad webhook domain in sub-fields", func(t *testing.T) {
		cm := envfile.NewConfigMap()
		cm.Set(envfile.KeyWebhookDomain, "-bad-.example")

		assert.Error(t, validateAnswers(cm))
	})
}
