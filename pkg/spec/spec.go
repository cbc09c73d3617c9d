// Package spec holds the design inputs of a Schmitt trigger and their
// validation rules.
package spec

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/circuit"
)

// SupportedTolerances lists the resistor tolerances, in percent, that a
// design can be analyzed for.
var SupportedTolerances = []float64{5.0, 1.0, 0.1}

// Spec is the input of one design run.
type Spec struct {
	// VCC is the supply voltage in Volts.
	VCC float64 `json:"vcc"`
	// LowTarget is the desired low switching threshold in Volts.
	LowTarget float64 `json:"lowTarget"`
	// HighTarget is the desired high switching threshold in Volts.
	HighTarget float64 `json:"highTarget"`
	// TolerancePercent is the resistor tolerance, one of SupportedTolerances.
	TolerancePercent float64 `json:"tolerancePercent"`
}

// Target returns the target thresholds.
func (s Spec) Target() circuit.Thresholds {
	return circuit.Thresholds{Low: s.LowTarget, High: s.HighTarget}
}

func (s Spec) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"vcc":              s.VCC,
		"lowTarget":        s.LowTarget,
		"highTarget":       s.HighTarget,
		"tolerancePercent": s.TolerancePercent,
	}
}

// Validate checks every constraint and reports all violations at once.
// The returned error is a *ValidationError, or nil.
func (s Spec) Validate() error {
	var v []Violation

	if !(0 < s.VCC) || math.IsInf(s.VCC, 1) {
		v = append(v, Violation{Field: FieldVCC, Message: "it has to be: 0 < VCC, and finite"})
	}
	if !(s.LowTarget < s.HighTarget) {
		v = append(v, Violation{Field: FieldThresholds, Message: "it has to be: low threshold target < high threshold target"})
	}
	if !(0 <= s.LowTarget && s.LowTarget <= s.VCC) || math.IsInf(s.LowTarget, 1) {
		v = append(v, Violation{Field: FieldLowTarget, Message: "it has to be: 0 <= low threshold target <= VCC"})
	}
	if !(0 <= s.HighTarget && s.HighTarget <= s.VCC) || math.IsInf(s.HighTarget, 1) {
		v = append(v, Violation{Field: FieldHighTarget, Message: "it has to be: 0 <= high threshold target <= VCC"})
	}
	if !slices.Contains(SupportedTolerances, s.TolerancePercent) {
		v = append(v, Violation{Field: FieldTolerance, Message: fmt.Sprintf("it has to be one of: %s", formatTolerances())})
	}

	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}

func formatTolerances() string {
	s := make([]string, 0, len(SupportedTolerances))
	for _, t := range SupportedTolerances {
		s = append(s, fmt.Sprintf("%g%%", t))
	}
	return strings.Join(s, ", ")
}
