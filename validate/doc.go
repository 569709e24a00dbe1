// Package validate adapts a JSON Schema engine to the narrow contract the
// dispatcher needs: validate a decoded JSON document against a decoded schema
// and report either success or the list of violations with their locations.
//
// The engine is santhosh-tekuri/jsonschema. Compiled schemas are cached by
// their canonical JSON text, so validating many documents against the same
// configuration schema compiles it once.
package validate
