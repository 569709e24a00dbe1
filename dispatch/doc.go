// Package dispatch routes a named operation with its arguments to the
// knowledge base or to the configuration validator and returns exactly one
// Envelope for every request.
//
// Each request moves through four steps: resolve the operation in the
// catalog, check the required and enumerated arguments, resolve the answer,
// and emit the envelope. Every step returns either an answer or a *Failure;
// only the last step turns a Failure into an error envelope, so nothing
// escapes Dispatch as a Go error or a panic.
//
// A configuration that does not satisfy the schema is a successful answer:
// validate_config reports it with valid=false and isError=false. Error
// envelopes are reserved for usage errors, missing backing documents and
// failures of the validation engine.
package dispatch
