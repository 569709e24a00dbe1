package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceURL = "file:///config-schema.json"

// JSONSchema validates documents with santhosh-tekuri/jsonschema.
// It is safe for concurrent use.
type JSONSchema struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchema returns a validator with an empty compile cache.
func NewJSONSchema() *JSONSchema {
	return &JSONSchema{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate implements Validator.
func (v *JSONSchema) Validate(document, schema any) (Outcome, error) {
	sch, err := v.compile(schema)
	if err != nil {
		return Outcome{}, err
	}

	doc, err := normalize(document)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: document: %v", ErrEngine, err)
	}

	err = sch.Validate(doc)
	if err == nil {
		return Outcome{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Outcome{}, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return Outcome{Valid: false, Issues: leafIssues(ve, nil)}, nil
}

func (v *JSONSchema) compile(schema any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrEngine, err)
	}
	key := string(data)

	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.compiled[key]; ok {
		return sch, nil
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(resourceURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	v.compiled[key] = sch
	return sch, nil
}

// normalize converts arbitrary Go values into the decoded-JSON shapes the
// engine understands.
func normalize(document any) (any, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// leafIssues flattens the engine's error tree into one issue per failing
// keyword. Intermediate nodes only summarise their causes.
func leafIssues(ve *jsonschema.ValidationError, out []Issue) []Issue {
	if len(ve.Causes) == 0 {
		return append(out, Issue{
			InstanceLocation:        ve.InstanceLocation,
			KeywordLocation:         ve.KeywordLocation,
			AbsoluteKeywordLocation: ve.AbsoluteKeywordLocation,
			Message:                 ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		out = leafIssues(cause, out)
	}
	return out
}
