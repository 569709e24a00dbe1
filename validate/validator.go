package validate

import "errors"

// ErrEngine marks failures of the validation engine itself, as opposed to
// violations found in the document.
var ErrEngine = errors.New("validation engine failure")

// Validator checks a document against a schema.
type Validator interface {
	// Validate returns the outcome, or an error if the engine could not run
	// (unusable schema, unrepresentable document).
	Validate(document, schema any) (Outcome, error)
}

// Outcome is the verdict for one document.
type Outcome struct {
	Valid  bool
	Issues []Issue
}

// Issue is one violation as reported by the engine.
type Issue struct {
	// InstanceLocation is the JSON pointer into the document ("" for the root).
	InstanceLocation string
	// KeywordLocation is the evaluation path of the failing keyword.
	KeywordLocation string
	// AbsoluteKeywordLocation is the failing keyword's URI, "<schema>#<pointer>".
	AbsoluteKeywordLocation string
	// Message is the human-readable cause.
	Message string
}

// Func adapts a plain function to the Validator interface.
type Func func(document, schema any) (Outcome, error)

// Validate calls f.
func (f Func) Validate(document, schema any) (Outcome, error) {
	return f(document, schema)
}
