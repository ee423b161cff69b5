package sigcard

import (
	"context"
	"log/slog"
	"sync"
)

// StaticInvoker returns a fixed response and records each request. Useful
// for exercising an Extractor without a real client.
type StaticInvoker struct {
	Response []byte
	Err      error

	mu       sync.Mutex
	requests []GenerateRequest
}

// Generate implements Invoker. It honors context cancellation.
func (s *StaticInvoker) Generate(ctx context.Context, req GenerateRequest) ([]byte, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Response, nil
}

// Requests returns the requests seen so far.
func (s *StaticInvoker) Requests() []GenerateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GenerateRequest(nil), s.requests...)
}

// NewForTesting creates an Extractor whose service always answers with
// response, using the built-in prompt template.
func NewForTesting(response string) (*Extractor, *StaticInvoker) {
	inv := &StaticInvoker{Response: []byte(response)}
	return NewWithInvoker(inv, nil, slog.Default()), inv
}
