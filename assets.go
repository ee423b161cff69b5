package sigcard

import (
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSignatureBytes caps the size of an uploaded signature.
const MaxSignatureBytes = 64 << 10

// DetectText reports the detected MIME type of data and whether it is text
// (text/plain or a descendant such as text/html).
func DetectText(data []byte) (string, bool) {
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return mt.String(), true
		}
	}
	return mt.String(), false
}

// ExtractBytes extracts a contact from an uploaded signature. Only textual
// content is accepted; anything else is a *ValidationError wrapping
// ErrUnsupportedInput and the service is not called.
func (x *Extractor) ExtractBytes(ctx context.Context, data []byte, optFns ...func(*Options)) (Contact, error) {
	if len(data) > MaxSignatureBytes {
		return Contact{}, &ValidationError{Err: fmt.Errorf("%w: %d bytes exceeds %d", ErrUnsupportedInput, len(data), MaxSignatureBytes)}
	}
	mt, ok := DetectText(data)
	if !ok {
		x.log.Debug("sigcard.extract.unsupported_input", "mime_type", mt, "bytes", len(data))
		return Contact{}, &ValidationError{Err: fmt.Errorf("%w: %s", ErrUnsupportedInput, mt)}
	}
	return x.Extract(ctx, string(data), optFns...)
}

// ExtractReader reads at most MaxSignatureBytes+1 bytes from r and calls ExtractBytes.
func (x *Extractor) ExtractReader(ctx context.Context, r io.Reader, optFns ...func(*Options)) (Contact, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSignatureBytes+1))
	if err != nil {
		return Contact{}, fmt.Errorf("read signature: %w", err)
	}
	return x.ExtractBytes(ctx, data, optFns...)
}
