package rpc

import "fmt"

// DecodeError reports a response whose top-level shape is unusable: the
// expected object is missing (JSON null) or is not an object at all.
// Per-field problems never raise it; those are absorbed by the decoder with
// zero defaults so a single malformed field cannot abort an otherwise-usable
// view.
type DecodeError struct {
	What string // "block", "transaction", "transaction receipt"
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed %s response", e.What)
}
