// Package types defines the JSON envelopes the portal frontend consumes.
package types

// SuccessEnvelope wraps every 2xx payload under a data key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public face of a coded error. The code is stable and safe
// for the frontend to branch on; details only carry field-level validation
// context, never dependency internals.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
