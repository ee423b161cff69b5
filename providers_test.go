package sigcard

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStickPromptProvider_Default(t *testing.T) {
	p, err := NewStickPromptProvider()
	require.NoError(t, err)

	out, err := p.GetPrompt(SignatureTag, promptVars("Jane Doe\nACME <jane@acme.io>"))
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe\nACME <jane@acme.io>", "signature is not escaped")
	assert.Contains(t, out, "- fullName: The full name of the person (e.g., 'Dr. Max Mustermann').")
	assert.Contains(t, out, "- website: The company or personal website URL.")
	assert.Contains(t, out, "leave its value as an empty string")
	assert.Equal(t, len(contactFields), strings.Count(fieldList(), "\n")+1)
}

func TestStickPromptProvider_Templates(t *testing.T) {
	p, err := NewStickPromptProvider(
		WithTemplates(map[string]string{"greet": "Hello {{ name }} from {{ org }} ({{ tag }})"}),
		WithVar("org", "ACME"),
		WithVar("name", "nobody"),
	)
	require.NoError(t, err)

	out, err := p.GetPrompt("greet", map[string]any{"name": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Jane from ACME (greet)", out)

	p.AddTemplate("greet", "Bye {{ name }}")
	out, err = p.GetPrompt("greet", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bye nobody", out)
}

func TestStickPromptProvider_WithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/signature.twig":   {Data: []byte("Custom: {{ signature }}")},
		"templates/nested/card.twig": {Data: []byte("card")},
		"templates/readme.md":        {Data: []byte("ignored")},
	}
	p, err := NewStickPromptProvider(WithFS(fsys, "templates"))
	require.NoError(t, err)

	out, err := p.GetPrompt(SignatureTag, promptVars("Jane"))
	require.NoError(t, err)
	assert.Equal(t, "Custom: Jane", out)

	out, err = p.GetPrompt("card", nil)
	require.NoError(t, err)
	assert.Equal(t, "card", out)

	_, err = p.GetPrompt("readme", nil)
	assert.Error(t, err)

	t.Run("missing dir", func(t *testing.T) {
		_, err := NewStickPromptProvider(WithFS(fsys, "nope"))
		assert.Error(t, err)
	})
}

func TestStickPromptProvider_Errors(t *testing.T) {
	p, err := NewStickPromptProvider(WithTemplates(map[string]string{"bad": "{% if %}"}))
	require.NoError(t, err)

	_, err = p.GetPrompt("missing", nil)
	assert.EqualError(t, err, `template "missing" not found`)

	_, err = p.GetPrompt("bad", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `execute "bad"`)
}
