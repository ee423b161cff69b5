package sigcard

import (
	"context"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout bounds a single extraction call.
	DefaultTimeout = 30 * time.Second
)

// Model represents a model identifier
type Model string

// GenerateRequest is one structured-generation call.
type GenerateRequest struct {
	Model       Model
	Prompt      string
	Schema      *genai.Schema
	Temperature *float32
}

// Invoker abstraction allows mocking the remote service.
type Invoker interface {
	Generate(ctx context.Context, req GenerateRequest) ([]byte, error)
}

// ContactExtractor is what a Form needs from an extractor.
type ContactExtractor interface {
	Extract(ctx context.Context, signature string, optFns ...func(*Options)) (Contact, error)
}

// Options represents functional options for extraction
type Options struct {
	Model       string
	Timeout     time.Duration // 0 → DefaultTimeout, <0 → no deadline
	Temperature *float32      // nil → model default
}

func defaultOptions() Options {
	return Options{Model: DefaultModel, Timeout: DefaultTimeout}
}

// Functional option constructors
func WithModel(name string) func(*Options) {
	return func(o *Options) { o.Model = name }
}

func WithTimeout(d time.Duration) func(*Options) {
	return func(o *Options) { o.Timeout = d }
}

func WithTemperature(t float32) func(*Options) {
	return func(o *Options) { o.Temperature = &t }
}
