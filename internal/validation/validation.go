// Package validation holds the building blocks of the write-path validation
// pipeline: field-keyed failures and ordered validator sequencing.
package validation

// NonFieldErrorsKey is the reserved key for failures that cannot be
// attributed to a single input field.
const NonFieldErrorsKey = "non_field_errors"

// Error is a validation failure keyed to an input field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errors renders the failure as a field-keyed message map.
func (e *Error) Errors() map[string][]string {
	return map[string][]string{e.Field: {e.Message}}
}

// New returns a failure attributed to the given field.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// NonField returns a failure under the reserved non-field key.
func NonField(message string) *Error {
	return &Error{Field: NonFieldErrorsKey, Message: message}
}

// Func is a single validator step.
type Func func() *Error

// Run executes validators in order, short-circuiting on the first failure.
func Run(validators ...Func) *Error {
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}
