package spec

import (
	"errors"
	"strings"
)

// Field identifies the constraint a Violation refers to.
type Field string

const (
	FieldVCC        Field = "vcc"
	FieldThresholds Field = "thresholds"
	FieldLowTarget  Field = "lowTarget"
	FieldHighTarget Field = "highTarget"
	FieldTolerance  Field = "tolerancePercent"
	// FieldScales and FieldWorkers are reported for run options rather
	// than for the Spec itself.
	FieldScales  Field = "scales"
	FieldWorkers Field = "workers"
)

// Violation is one failed constraint.
type Violation struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return "error in specification " + string(v.Field) + ", " + v.Message
}

// ValidationError lists every constraint a Spec violates.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return "invalid specification: " + strings.Join(msgs, "; ")
}

// Has reports whether f is among the violated fields.
func (e *ValidationError) Has(f Field) bool {
	for _, v := range e.Violations {
		if v.Field == f {
			return true
		}
	}
	return false
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
