package server

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnknownTransport = errors.New("unknown transport")
)

// JSON-RPC 2.0 error codes.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
)
