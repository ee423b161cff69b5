package sigcard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExecutionStats describes the call an extraction would make.
type ExecutionStats struct {
	Model          string        `json:"model"`          // Model the call goes to
	Timeout        time.Duration `json:"timeout"`        // Deadline applied to the call
	Fields         []string      `json:"fields"`         // Keys in the output schema
	RequiredFields []string      `json:"requiredFields"` // Keys the schema marks required
	Prompt         string        `json:"prompt"`         // Rendered instruction
	InputTokens    int           `json:"inputTokens"`    // Estimated prompt + schema tokens
	OutputTokens   int           `json:"outputTokens"`   // Estimated response tokens
}

// DryRun renders the prompt and schema for signature without calling the
// service. It fails the same way Extract does for blank input or a broken
// template.
func (x *Extractor) DryRun(ctx context.Context, signature string, optFns ...func(*Options)) (*ExecutionStats, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, &ValidationError{Err: ErrEmptySignature}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := x.options(optFns)
	prompt, err := x.prompts.GetPrompt(SignatureTag, promptVars(signature))
	if err != nil {
		return nil, fmt.Errorf("dry run: %w", err)
	}

	schema := ResponseSchema()
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("dry run: encode schema: %w", err)
	}

	stats := &ExecutionStats{
		Model:          opts.Model,
		Timeout:        opts.Timeout,
		Fields:         append([]string(nil), schema.PropertyOrdering...),
		RequiredFields: append([]string(nil), schema.Required...),
		Prompt:         prompt,
		InputTokens:    EstimateTokensFromText(prompt) + EstimateTokensFromText(string(schemaJSON)),
		OutputTokens:   estimateOutputTokensForFields(schema.PropertyOrdering),
	}

	x.log.Debug("Dry run completed",
		"model", stats.Model,
		"input_tokens", stats.InputTokens,
		"output_tokens", stats.OutputTokens)
	return stats, nil
}

// PlanFormat selects the output of Explain.
type PlanFormat string

const (
	FormatText PlanFormat = "text"
	FormatJSON PlanFormat = "json"
)

// Explain performs a dry run and returns the plan as text.
func (x *Extractor) Explain(ctx context.Context, signature string, optFns ...func(*Options)) (string, error) {
	return x.ExplainFormat(ctx, signature, FormatText, optFns...)
}

// ExplainFormat performs a dry run and returns the plan in the given format.
func (x *Extractor) ExplainFormat(ctx context.Context, signature string, format PlanFormat, optFns ...func(*Options)) (string, error) {
	stats, err := x.DryRun(ctx, signature, optFns...)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatJSON:
		return formatStatsJSON(stats)
	case FormatText, "":
		return formatStats(stats), nil
	default:
		return "", fmt.Errorf("unsupported plan format %q", format)
	}
}

// formatStatsJSON formats the stats as indented JSON.
func formatStatsJSON(s *ExecutionStats) (string, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// formatStats formats the stats as an ASCII tree.
func formatStats(s *ExecutionStats) string {
	var sb strings.Builder
	sb.WriteString("Signature Extraction Plan (estimated)\n")
	sb.WriteString(fmt.Sprintf("PromptCall %q (model=%s, timeout=%s, tokens(in=%d,out=%d))\n",
		SignatureTag, s.Model, s.Timeout, s.InputTokens, s.OutputTokens))
	sb.WriteString(fmt.Sprintf("  ├─ Schema (fields=%d, required=%v)\n", len(s.Fields), s.RequiredFields))
	sb.WriteString("  └─ Normalize (missing or null → \"\")\n")
	return sb.String()
}

// estimateOutputTokensForFields estimates output tokens based on field names
func estimateOutputTokensForFields(fields []string) int {
	// Base JSON structure overhead
	baseTokens := 10 + len(fields)*2

	contentTokens := 0
	for _, field := range fields {
		f := strings.ToLower(field)
		switch {
		case strings.Contains(f, "address"):
			contentTokens += 30
		case strings.Contains(f, "email") || strings.Contains(f, "phone") || strings.Contains(f, "website"):
			contentTokens += 20
		default:
			contentTokens += 15
		}
	}
	return baseTokens + contentTokens
}
