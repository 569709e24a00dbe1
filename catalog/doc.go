// Package catalog declares the fixed set of operations served by formdocs.
//
// The catalog is built once at start-up and never mutated. It is the single
// source of truth for both the tools/list advertisement and the argument
// checks performed by the dispatcher: the legal values for control_name and
// spec_name come from the closed ControlKind and SpecKind enumerations, and
// the same tables drive the JSON Schema published for every tool.
//
// # Operations
//
//   - list_controls: overview table of supported controls
//   - get_control_docs: documentation for one control (control_name)
//   - list_spec_values: overview table of supported Spec types
//   - get_spec_value_docs: documentation for one Spec type (spec_name)
//   - get_config_schema: the full configuration JSON Schema
//   - validate_config: validate a configuration object (config)
//
// # Usage
//
//	cat := catalog.New()
//	op, ok := cat.Get("get_control_docs")
//	if ok && cat.IsLegalValue(op.Name, catalog.ArgControlName, "textarea") {
//	    // ...
//	}
package catalog
