package dispatch

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-openapi/jsonpointer"

	"github.com/jonwraymond/formdocs/validate"
)

// ValidationError is one violation in a validate_config answer.
type ValidationError struct {
	// Path is the JSON pointer into the configuration ("/" for the root).
	Path string `json:"path"`
	// Message is the human-readable cause.
	Message string `json:"message"`
	// Schema is the schema fragment whose keyword was violated.
	Schema any `json:"schema"`
}

// ValidationReport is the JSON body of a validate_config answer.
type ValidationReport struct {
	Valid      bool              `json:"valid"`
	Message    string            `json:"message,omitempty"`
	Errors     []ValidationError `json:"errors,omitempty"`
	ErrorCount int               `json:"errorCount,omitempty"`
}

func normalizeOutcome(outcome validate.Outcome, schema any) ValidationReport {
	if outcome.Valid {
		return ValidationReport{Valid: true, Message: ValidMessage}
	}

	errs := make([]ValidationError, 0, len(outcome.Issues))
	for _, issue := range outcome.Issues {
		path := issue.InstanceLocation
		if path == "" {
			path = "/"
		}
		errs = append(errs, ValidationError{
			Path:    path,
			Message: issue.Message,
			Schema:  schemaFragment(schema, issue),
		})
	}
	return ValidationReport{Valid: false, Errors: errs, ErrorCount: len(errs)}
}

// schemaFragment returns the subschema holding the failing keyword, or nil
// when the location cannot be resolved in schema.
func schemaFragment(schema any, issue validate.Issue) any {
	loc := issue.AbsoluteKeywordLocation
	idx := strings.Index(loc, "#")
	if idx < 0 {
		return nil
	}
	pointer := loc[idx+1:]

	// Drop the keyword itself to address the schema object containing it.
	if cut := strings.LastIndex(pointer, "/"); cut >= 0 {
		pointer = pointer[:cut]
	} else {
		return nil
	}

	p, err := jsonpointer.New(pointer)
	if err != nil {
		return nil
	}
	fragment, _, err := p.Get(schema)
	if err != nil {
		return nil
	}
	return fragment
}

func renderReport(report ValidationReport) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
