package tools

import "fmt"

// MissingArgumentError signals a required capability argument that was
// absent or empty.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Field)
}

// InvalidArgumentError signals an argument that was present but could
// not be coerced into its declared type or range.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// UnknownCapabilityError signals a tool call naming a capability the
// dispatcher does not know.
type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown capability: %s", e.Name)
}

// UpstreamError wraps a travel search failure (network error, non-2xx
// status, malformed response).
type UpstreamError struct {
	Capability string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream call failed: %v", e.Capability, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
