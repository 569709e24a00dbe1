// Package knowledge holds the read-only documentation and schema content
// served by formdocs.
//
// A Base is loaded once (normally from the content embedded in the binary)
// and never modified afterwards. Every accessor returns either a string or a
// fresh copy of the structured schema, so callers cannot change what other
// requests observe.
//
// A control or spec kind that is enumerated by the catalog but has no backing
// document is not a load failure; it is reported by ControlDoc and SpecDoc as
// ErrNotFound, which callers treat as a data-integrity fault rather than a
// usage error.
package knowledge
