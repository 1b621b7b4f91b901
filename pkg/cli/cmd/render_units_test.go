package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docker-compose.yml.tmpl"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "getpro.service.tmpl"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.tmpl"), 0700))

	paths, err := templateFiles(dir)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.Contains(t, p, ".tmpl")
	}
}

func TestTemplateFilesMissingDir(t *testing.T) {
	_, err := templateFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestValidatorRules(t *testing.T) {
	assert.True(t, validatorRules["token"]("123456789:ABCdefGHI"))
	assert.False(t, validatorRules["token"]("abc:xyz"))
	assert.True(t, validatorRules["id-list"]("111, 222"))
	assert.True(t, validatorRules["domain"]("bot.example.com"))
	assert.False(t, validatorRules["email"]("not-an-email"))
}
