package sigcard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRun(t *testing.T) {
	x, inv := NewForTesting(fullResponse)

	stats, err := x.DryRun(context.Background(), signature, WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Empty(t, inv.Requests(), "dry run never calls the service")

	assert.Equal(t, DefaultModel, stats.Model)
	assert.Equal(t, 5*time.Second, stats.Timeout)
	assert.Len(t, stats.Fields, 11)
	assert.Equal(t, []string{"fullName", "firstName", "lastName", "email"}, stats.RequiredFields)
	assert.Contains(t, stats.Prompt, signature)
	assert.Greater(t, stats.InputTokens, EstimateTokensFromText(signature))
	assert.Equal(t, estimateOutputTokensForFields(stats.Fields), stats.OutputTokens)
}

func TestDryRun_Errors(t *testing.T) {
	x, _ := NewForTesting(fullResponse)

	_, err := x.DryRun(context.Background(), " ")
	assert.ErrorIs(t, err, ErrValidation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = x.DryRun(ctx, signature)
	assert.ErrorIs(t, err, context.Canceled)

	broken := NewWithInvoker(&StaticInvoker{}, failingPrompts{}, nil)
	_, err = broken.DryRun(context.Background(), signature)
	assert.ErrorContains(t, err, "dry run")
}

func TestExplain(t *testing.T) {
	x, _ := NewForTesting(fullResponse)

	out, err := x.Explain(context.Background(), signature, WithModel("gemini-2.5-pro"))
	require.NoError(t, err)
	assert.Contains(t, out, "Signature Extraction Plan (estimated)")
	assert.Contains(t, out, `PromptCall "signature" (model=gemini-2.5-pro, timeout=30s`)
	assert.Contains(t, out, "Schema (fields=11, required=[fullName firstName lastName email])")
}

func TestExplainFormat(t *testing.T) {
	x, _ := NewForTesting(fullResponse)

	out, err := x.ExplainFormat(context.Background(), signature, FormatJSON)
	require.NoError(t, err)

	var stats ExecutionStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, DefaultModel, stats.Model)
	assert.Equal(t, DefaultTimeout, stats.Timeout)
	assert.Len(t, stats.Fields, 11)

	_, err = x.ExplainFormat(context.Background(), signature, "yaml")
	assert.ErrorContains(t, err, `unsupported plan format "yaml"`)
}
