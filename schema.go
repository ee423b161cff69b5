package sigcard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"
)

const responseSchemaURL = "contact.schema.json"

// ResponseSchema is the output schema sent to Gemini: an object with the
// eleven Contact properties, of which fullName, firstName, lastName and email
// are required.
func ResponseSchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(contactFields))
	order := make([]string, 0, len(contactFields))
	var required []string
	for _, f := range contactFields {
		props[f.Key] = &genai.Schema{Type: genai.TypeString, Description: f.Description}
		order = append(order, f.Key)
		if f.Required {
			required = append(required, f.Key)
		}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         required,
	}
}

// localSchemaDoc is the schema used to check what came back. It only
// constrains types: absent keys are filled in later, so nothing is required.
func localSchemaDoc() map[string]any {
	props := make(map[string]any, len(contactFields))
	for _, f := range contactFields {
		props[f.Key] = map[string]any{"type": []string{"string", "null"}}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

var responseValidator = mustCompileSchema(localSchemaDoc())

func mustCompileSchema(doc map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("sigcard: marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(responseSchemaURL, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("sigcard: add schema: %v", err))
	}
	return compiler.MustCompile(responseSchemaURL)
}

// decodeResponse parses the model output, checks it against the local schema
// and fills every missing or null field with "".
func decodeResponse(raw []byte) (Contact, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Contact{}, fmt.Errorf("decode response: %w", err)
	}
	if err := responseValidator.Validate(doc); err != nil {
		return Contact{}, fmt.Errorf("response does not match schema: %w", err)
	}
	m, _ := doc.(map[string]any)
	return normalizeContact(m), nil
}

// normalizeContact copies known keys from m into a Contact. Missing keys,
// nulls and non-string values become "".
func normalizeContact(m map[string]any) Contact {
	out := EmptyContact()
	for _, f := range contactFields {
		s, _ := m[f.Key].(string)
		_ = out.Set(f.Key, strings.TrimSpace(s))
	}
	return out
}
