package sigcard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 5 * time.Second

// Severity of a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient message for the user.
type Notification struct {
	Text      string
	Severity  Severity
	ExpiresAt time.Time
}

// User-facing notification texts.
const (
	msgSignatureMissing = "Please paste a signature into the text area."
	msgParsed           = "Signature parsed successfully! Please review the fields."
	msgUnknownError     = "An unknown error occurred."
	msgRequiredNames    = "Full Name, First Name, and Last Name are required."
	msgGenerated        = "VCF file generated and downloaded successfully!"
	msgGenerateFailed   = "An unexpected error occurred while generating the file."
	msgReset            = "All fields have been reset."
)

// Form is the state behind a contact form: the record being edited, the
// guard that keeps a single extraction in flight, and the current
// notification. It is safe for concurrent use.
type Form struct {
	ext      ContactExtractor
	optFns   []func(*Options)
	inFlight *semaphore.Weighted
	now      func() time.Time
	metrics  *Metrics
	log      *slog.Logger

	mu      sync.Mutex
	contact Contact
	note    *Notification
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) FormOption {
	return func(f *Form) { f.now = now }
}

// WithFormLogger sets the logger.
func WithFormLogger(log *slog.Logger) FormOption {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// WithFormMetrics records card generations on m.
func WithFormMetrics(m *Metrics) FormOption {
	return func(f *Form) { f.metrics = m }
}

// WithExtractOptions passes optFns to every extraction.
func WithExtractOptions(optFns ...func(*Options)) FormOption {
	return func(f *Form) { f.optFns = append(f.optFns, optFns...) }
}

// NewForm returns a form holding ExampleContact().
func NewForm(ext ContactExtractor, opts ...FormOption) *Form {
	f := &Form{
		ext:      ext,
		inFlight: semaphore.NewWeighted(1),
		now:      time.Now,
		log:      slog.Default(),
		contact:  ExampleContact(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Contact returns a copy of the current record.
func (f *Form) Contact() Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contact
}

// Set edits one field by JSON key.
func (f *Form) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contact.Set(key, value)
}

// Busy reports whether an extraction is in flight.
func (f *Form) Busy() bool {
	if !f.inFlight.TryAcquire(1) {
		return true
	}
	f.inFlight.Release(1)
	return false
}

// Notification returns the active notification, if any.
func (f *Form) Notification() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.note == nil || !f.now().Before(f.note.ExpiresAt) {
		return Notification{}, false
	}
	return *f.note, true
}

// notify replaces any pending notification and restarts the display window.
func (f *Form) notify(sev Severity, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.note = &Notification{Text: text, Severity: sev, ExpiresAt: f.now().Add(NotificationTTL)}
}

func (f *Form) clearNotification() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.note = nil
}

// ParseSignature extracts a contact from text and replaces the record with
// it. A second call while one is running returns ErrBusy at once.
func (f *Form) ParseSignature(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		f.notify(SeverityError, msgSignatureMissing)
		return &ValidationError{Err: ErrEmptySignature}
	}
	if !f.inFlight.TryAcquire(1) {
		return ErrBusy
	}
	defer f.inFlight.Release(1)

	f.clearNotification()
	c, err := f.ext.Extract(ctx, text, f.optFns...)
	if err != nil {
		var ee *ExtractionError
		switch {
		case errors.As(err, &ee):
			f.notify(SeverityError, ee.Message)
		case errors.Is(err, ErrValidation):
			f.notify(SeverityError, msgSignatureMissing)
		default:
			f.log.Error("sigcard.form.parse_error", "error", err)
			f.notify(SeverityError, msgUnknownError)
		}
		return err
	}

	f.mu.Lock()
	f.contact = c
	f.mu.Unlock()
	f.notify(SeveritySuccess, msgParsed)
	return nil
}

// Generate serializes the current record and, when w is not nil, writes the
// card to it.
func (f *Form) Generate(w io.Writer) (*File, error) {
	file, err := Serialize(f.Contact())
	if err == nil && w != nil {
		_, err = file.WriteTo(w)
	}
	f.metrics.observeCard(err)

	switch {
	case err == nil:
		f.notify(SeveritySuccess, msgGenerated)
		return file, nil
	case errors.Is(err, ErrValidation):
		f.notify(SeverityError, msgRequiredNames)
	default:
		f.log.Error("sigcard.form.generate_error", "error", err)
		f.notify(SeverityError, msgGenerateFailed)
	}
	return nil, err
}

// Reset replaces the record with an empty one.
func (f *Form) Reset() {
	f.mu.Lock()
	f.contact = EmptyContact()
	f.mu.Unlock()
	f.notify(SeverityInfo, msgReset)
}
