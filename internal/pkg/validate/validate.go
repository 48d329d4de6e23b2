package validate

import "github.com/go-playground/validator/v10"

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during
// init() before the first call to Struct.
var v = validator.New()

// FieldError describes a single failed validation rule in a form that is
// safe to return to clients.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Struct validates the given struct using its validate tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Fields extracts client-facing field errors from a validation error.
// Returns nil if err is not a validation error.
func Fields(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
