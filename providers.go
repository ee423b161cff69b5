package sigcard

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tyler-sommer/stick"
)

// SignatureTag is the template tag used for signature extraction.
const SignatureTag = "signature"

// defaultSignatureTemplate renders the instruction sent to the model.
// Variables: field_list, signature.
const defaultSignatureTemplate = `Extract contact details from the following email signature. Return the data as a JSON object matching the provided schema.

Fields:
{{ field_list }}

If a field is not found, leave its value as an empty string. Never omit a field and never return null. Be accurate.

Email Signature:
` + "```" + `
{{ signature }}
` + "```"

// PromptProvider renders the prompt text for a tag.
type PromptProvider interface {
	GetPrompt(tag string, vars map[string]any) (string, error)
}

// StickPromptProvider renders prompts from Stick templates held in memory.
// Templates can come from any fs.FS.
type StickPromptProvider struct {
	env       *stick.Env
	templates map[string]string
	vars      map[string]any
}

// Option configures a StickPromptProvider.
type Option func(*StickPromptProvider) error

// WithFS loads every *.twig file found under dir in the supplied FS.
// The file's base name without extension becomes its tag.
func WithFS[F fs.FS](fsys F, dir string) Option {
	return func(p *StickPromptProvider) error {
		return fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".twig") {
				return nil
			}
			content, readErr := fs.ReadFile(fsys, path)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", path, readErr)
			}
			tag := strings.TrimSuffix(filepath.Base(path), ".twig")
			p.templates[tag] = string(content)
			return nil
		})
	}
}

// WithTemplates lets you inject an in-memory map.
func WithTemplates(m map[string]string) Option {
	return func(p *StickPromptProvider) error {
		for k, v := range m {
			p.templates[k] = v
		}
		return nil
	}
}

// WithVar adds a variable that will be available in all templates.
func WithVar(key string, value any) Option {
	return func(p *StickPromptProvider) error {
		p.vars[key] = value
		return nil
	}
}

// NewStickPromptProvider builds a provider that already knows the default
// signature template; options may override it.
func NewStickPromptProvider(opts ...Option) (*StickPromptProvider, error) {
	p := &StickPromptProvider{
		env:       stick.New(nil),
		templates: map[string]string{SignatureTag: defaultSignatureTemplate},
		vars:      make(map[string]any),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddTemplate updates or inserts one template.
func (p *StickPromptProvider) AddTemplate(tag, tpl string) { p.templates[tag] = tpl }

// GetPrompt renders the template for tag. Call-site vars override the
// provider-wide ones.
func (p *StickPromptProvider) GetPrompt(tag string, vars map[string]any) (string, error) {
	tpl, ok := p.templates[tag]
	if !ok {
		return "", fmt.Errorf("template %q not found", tag)
	}

	templateCtx := make(map[string]stick.Value, len(p.vars)+len(vars)+1)
	templateCtx["tag"] = tag
	for k, v := range p.vars {
		templateCtx[k] = v
	}
	for k, v := range vars {
		templateCtx[k] = v
	}

	var out strings.Builder
	if err := p.env.Execute(tpl, &out, templateCtx); err != nil {
		return "", fmt.Errorf("execute %q: %w", tag, err)
	}
	return out.String(), nil
}

// fieldList formats the field descriptors for the prompt, one per line.
func fieldList() string {
	lines := make([]string, 0, len(contactFields))
	for _, f := range contactFields {
		lines = append(lines, "- "+f.Key+": "+f.Description)
	}
	return strings.Join(lines, "\n")
}

// promptVars are the variables the signature template is rendered with.
func promptVars(signature string) map[string]any {
	return map[string]any{
		"field_list": fieldList(),
		"signature":  signature,
	}
}
