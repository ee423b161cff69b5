// Package sigcard turns pasted e-mail signatures into contact records using
// Gemini structured output, and writes contact records as vCard files.
//
// # Extraction
//
// An Extractor renders an instruction from a Stick (Twig) template, sends it
// to the model together with a strict JSON schema, and normalizes the reply so
// every one of the eleven Contact fields is present:
//
//	client, _ := sigcard.LoadConfig().NewClient(ctx)
//	x := sigcard.New(client, nil)
//	c, err := x.Extract(ctx, signature, sigcard.WithTimeout(30*time.Second))
//
// A blank signature fails with a *ValidationError before any call is made.
// Any other failure is an *ExtractionError; its Error() text is safe to show
// to users and the underlying cause is available through errors.Unwrap.
// Extraction is never retried.
//
// # Serialization
//
// Serialize produces a vCard 3.0 document:
//
//	f, err := sigcard.Serialize(c)
//	// f.Data, f.FileName ("max_mustermann.vcf"), f.MediaType
//
// Full name, first name and last name are required; otherwise Serialize
// returns a *ValidationError naming the missing fields and no output. The
// address is split on commas into street, city and postal code. Values are
// written without escaping.
//
// # Forms
//
// Form holds the record a user is editing and implements the three actions of
// a contact form (parse, generate, reset) together with the single
// transient notification they produce. Only one parse may run at a time.
package sigcard
