package sigcard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Extractor turns free-text signatures into Contact records through a
// structured-generation model. It holds no mutable state and is safe for
// concurrent use.
type Extractor struct {
	invoker Invoker
	prompts PromptProvider
	metrics *Metrics
	log     *slog.Logger
}

// New returns an Extractor that logs with slog.Default(). A nil provider
// selects the built-in signature template.
func New(client *genai.Client, p PromptProvider) *Extractor {
	return NewWithLogger(client, p, slog.Default())
}

// NewWithLogger lets the caller supply their own logger.
func NewWithLogger(client *genai.Client, p PromptProvider, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return newExtractor(&geminiInvoker{client: client, log: log}, p, log)
}

// NewWithInvoker builds an Extractor on top of any Invoker.
func NewWithInvoker(inv Invoker, p PromptProvider, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return newExtractor(inv, p, log)
}

func newExtractor(inv Invoker, p PromptProvider, log *slog.Logger) *Extractor {
	if p == nil {
		// no options, cannot fail
		p, _ = NewStickPromptProvider()
	}
	return &Extractor{invoker: inv, prompts: p, log: log}
}

// WithMetrics attaches m and returns x.
func (x *Extractor) WithMetrics(m *Metrics) *Extractor {
	x.metrics = m
	return x
}

func (x *Extractor) options(optFns []func(*Options)) Options {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return opts
}

// Extract sends signature to the model and returns the normalized record.
//
// A blank signature yields a *ValidationError without contacting the service.
// Every other failure (prompt rendering, transport, timeout, malformed or
// off-schema output) yields an *ExtractionError whose message is safe to show
// to a user. There are no retries.
func (x *Extractor) Extract(ctx context.Context, signature string, optFns ...func(*Options)) (Contact, error) {
	rid := uuid.New().String()
	start := time.Now()
	called := false

	if strings.TrimSpace(signature) == "" {
		err := &ValidationError{Err: ErrEmptySignature}
		x.log.Debug("sigcard.extract.empty_signature", "req_id", rid)
		x.metrics.observeExtraction(err, 0, false)
		return Contact{}, err
	}

	opts := x.options(optFns)
	x.log.Debug("sigcard.extract.start",
		"req_id", rid,
		"model", opts.Model,
		"timeout", opts.Timeout,
		"text_len", len(signature),
	)

	fail := func(event string, cause error) (Contact, error) {
		x.log.Error(event,
			"req_id", rid,
			"error", cause,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		err := newExtractionError(cause)
		x.metrics.observeExtraction(err, time.Since(start), called)
		return Contact{}, err
	}

	prompt, err := x.prompts.GetPrompt(SignatureTag, promptVars(signature))
	if err != nil {
		return fail("sigcard.extract.prompt_error", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	called = true
	raw, err := x.invoker.Generate(ctx, GenerateRequest{
		Model:       Model(opts.Model),
		Prompt:      prompt,
		Schema:      ResponseSchema(),
		Temperature: opts.Temperature,
	})
	if err != nil {
		return fail("sigcard.extract.generate_error", err)
	}

	out, err := decodeResponse(SanitizeJSONResponse(raw))
	if err != nil {
		x.log.Debug("sigcard.extract.raw_response", "req_id", rid, "raw", string(raw))
		return fail("sigcard.extract.decode_error", err)
	}

	x.metrics.observeExtraction(nil, time.Since(start), called)
	x.log.Info("sigcard.extract.ok",
		"req_id", rid,
		"model", opts.Model,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
