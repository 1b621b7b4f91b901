package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	r := NewRenderer(map[string]string{
		"DB_NAME":     "getpro",
		"DB_PASSWORD": "p@ss=word",
		"DB_PORT":     "5432",
	})

	t.Run("inline substitution", func(t *testing.T) {
		out, err := r.RenderString("POSTGRES_DB: {{env:DB_NAME}}")
		require.NoError(t, err)
		assert.Equal(t, "POSTGRES_DB: getpro", out)
	})

	t.Run("values stay opaque", func(t *testing.T) {
		out, err := r.RenderString("password={{env:DB_PASSWORD}}")
		require.NoError(t, err)
		assert.Equal(t, "password=p@ss=word", out)
	})

	t.Run("multiple placeholders per line", func(t *testing.T) {
		out, err := r.RenderString("{{env:DB_NAME}}:{{env:DB_PORT}}")
		require.NoError(t, err)
		assert.Equal(t, "getpro:5432", out)
	})

	t.Run("default filter fills absent keys", func(t *testing.T) {
		out, err := r.RenderString("host: {{env:DB_HOST | default: localhost}}")
		require.NoError(t, err)
		assert.Equal(t, "host: localhost", out)
	})

	t.Run("quoted default keeps inner text", func(t *testing.T) {
		out, err := r.RenderString(`tz: {{env:TZ | default: "Europe/Moscow"}}`)
		require.NoError(t, err)
		assert.Equal(t, "tz: Europe/Moscow", out)
	})

	t.Run("missing key without default fails", func(t *testing.T) {
		_, err := r.RenderString("token: {{env:BOT_TOKEN}}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("unknown head fails", func(t *testing.T) {
		_, err := r.RenderString("{{secret:DB_NAME}}")
		assert.Error(t, err)
	})

	t.Run("multi-line template", func(t *testing.T) {
		in := "services:\n  db:\n    image: postgres:16\n    environment:\n      POSTGRES_DB: {{env:DB_NAME}}\n"
		out, err := r.RenderString(in)
		require.NoError(t, err)
		assert.Contains(t, out, "POSTGRES_DB: getpro")
	})
}
