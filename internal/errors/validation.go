package errors

// Violation is a single field-scoped validation failure, shaped for a
// 422 response body.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationException struct {
	Violations []Violation
}

func NewValidationException(violations []Violation) *ValidationException {
	return &ValidationException{Violations: violations}
}

func (e *ValidationException) Error() string {
	return "validation failed"
}
