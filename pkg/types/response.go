package types

// SuccessEnvelope wraps every successful API payload.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MutationResult reports whether a keyed mutation found its target.
// Missing keys are no-ops, not errors.
type MutationResult struct {
	Found bool `json:"found"`
}
