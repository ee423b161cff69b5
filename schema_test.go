package sigcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestResponseSchema(t *testing.T) {
	s := ResponseSchema()
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{
		"fullName", "firstName", "lastName", "prefix", "organization", "title",
		"address", "workPhone", "mobilePhone", "email", "website",
	}, s.PropertyOrdering)
	assert.Equal(t, []string{"fullName", "firstName", "lastName", "email"}, s.Required)

	require.Len(t, s.Properties, 11)
	for key, p := range s.Properties {
		assert.Equal(t, genai.TypeString, p.Type, key)
		assert.NotEmpty(t, p.Description, key)
	}
	assert.Contains(t, s.Properties["address"].Description, "Street, City, Postal Code")

	// each call builds a fresh schema
	s.Required = nil
	assert.Len(t, ResponseSchema().Required, 4)
}

func TestDecodeResponse(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		c, err := decodeResponse([]byte(fullResponse))
		require.NoError(t, err)
		assert.Equal(t, drMax(), c)
	})

	t.Run("missing keys", func(t *testing.T) {
		c, err := decodeResponse([]byte(`{"lastName":"Mustermann"}`))
		require.NoError(t, err)
		assert.Equal(t, Contact{LastName: "Mustermann"}, c)
	})

	for name, raw := range map[string]string{
		"syntax":  `{"fullName":`,
		"string":  `"Max"`,
		"number":  `{"email": 1}`,
		"boolean": `{"website": true}`,
		"array":   `{"title": ["CEO"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeResponse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestNormalizeContact(t *testing.T) {
	assert.Equal(t, Contact{}, normalizeContact(nil))
	assert.Equal(t,
		Contact{FullName: "Max", Email: "m@x.de"},
		normalizeContact(map[string]any{"fullName": " Max ", "email": "m@x.de", "prefix": nil, "title": 3.0}),
	)
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":"b"}`, `{"a":"b"}`},
		{"  {\"a\":\"b\"}\n", `{"a":"b"}`},
		{"```json\n{\"a\":\"b\"}\n```", `{"a":"b"}`},
		{"```\n{\"a\":\"b\"}\n```", `{"a":"b"}`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(SanitizeJSONResponse([]byte(tt.in))))
	}
}

func TestEstimateTokensFromText(t *testing.T) {
	assert.Equal(t, 0, EstimateTokensFromText(""))
	assert.Equal(t, 1, EstimateTokensFromText("abc"))
	assert.Equal(t, 2, EstimateTokensFromText("abcde"))
}
