package sigcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// geminiInvoker implements Invoker using Google GenAI.
type geminiInvoker struct {
	client *genai.Client
	log    *slog.Logger
}

// Generate asks the model for JSON constrained to req.Schema and returns the
// raw response text.
func (gv *geminiInvoker) Generate(ctx context.Context, req GenerateRequest) ([]byte, error) {
	if gv.client == nil {
		return nil, ErrClientMissing
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
		Temperature:      req.Temperature,
	}
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	gv.log.Debug("Generating content", "model", string(req.Model), "prompt_length", len(req.Prompt))

	resp, err := gv.client.Models.GenerateContent(ctx, string(req.Model), contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no parts in candidate content (finish reason %q)", candidate.FinishReason)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("no text in response")
	}

	gv.log.Debug("Received response", "candidates_count", len(resp.Candidates), "response_length", text.Len())
	return []byte(text.String()), nil
}
