package sigcard

import (
	"errors"
	"strings"
)

var (
	// ErrEmptySignature is returned when the signature text is blank.
	ErrEmptySignature = errors.New("signature text is empty")
	// ErrUnsupportedInput is returned by ExtractBytes for non-text content.
	ErrUnsupportedInput = errors.New("input is not text")
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrBusy is returned by Form.ParseSignature while another parse is in flight.
	ErrBusy = errors.New("a signature is already being parsed")
	// ErrUnknownField is returned for a key that is not a Contact field.
	ErrUnknownField = errors.New("unknown contact field")
	// ErrClientMissing is returned when the Gemini invoker has no client.
	ErrClientMissing = errors.New("client not initialized")
	// ErrMissingAPIKey is returned by Config.Validate.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")
)

// extractionFailedMessage is the only text an end user sees for a failed extraction.
const extractionFailedMessage = "Failed to parse signature with AI. Please try again."

// ValidationError reports missing required input. Fields holds the JSON keys
// of the missing fields, in record order; it is empty for non-field input
// problems such as a blank signature.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	if len(e.Fields) > 0 {
		b.WriteString(": missing required field(s) ")
		b.WriteString(strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ExtractionError is returned when the remote extraction fails for any reason.
// Error() carries only the user-safe message; the cause is reachable through
// errors.Unwrap for logging.
type ExtractionError struct {
	Message string
	Cause   error
}

func newExtractionError(cause error) *ExtractionError {
	return &ExtractionError{Message: extractionFailedMessage, Cause: cause}
}

func (e *ExtractionError) Error() string { return e.Message }

func (e *ExtractionError) Unwrap() error { return e.Cause }

// SerializationError is an unexpected failure while producing the vCard stream.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return "an unexpected error occurred while generating the file"
}

func (e *SerializationError) Unwrap() error { return e.Cause }
