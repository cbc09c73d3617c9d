// Package tolerance estimates how far a nominal design drifts when every
// resistor sits at the edge of its manufacturing tolerance.
package tolerance

import (
	"github.com/charlie0129/schmitt/pkg/circuit"
)

// Result is the worst configuration found in the tolerance grid.
type Result struct {
	// Error is the sum of the absolute threshold deltas from the target.
	Error      float64            `json:"error"`
	Thresholds circuit.Thresholds `json:"thresholds"`
	// Resistors is the perturbed triple that produced Thresholds.
	Resistors circuit.Resistors `json:"resistors"`
	// Found is false when no combination drifted from the target at all.
	Found bool `json:"found"`
}

// Expand returns the low edge, nominal and high edge of a resistor with the
// given tolerance in percent.
func Expand(nominal, percent float64) [3]float64 {
	delta := nominal * percent * 0.01
	return [3]float64{nominal - delta, nominal, nominal + delta}
}

// WorstCase evaluates the 27 combinations of each resistor at its low edge,
// nominal and high edge, and returns the one with the largest absolute-sum
// error. Ties keep the first combination found.
func WorstCase(nominal circuit.Resistors, vcc float64, target circuit.Thresholds, percent float64) Result {
	var worst Result

	for _, r1 := range Expand(nominal.R1, percent) {
		for _, r2 := range Expand(nominal.R2, percent) {
			for _, r3 := range Expand(nominal.R3, percent) {
				r := circuit.Resistors{R1: r1, R2: r2, R3: r3}
				obtained := circuit.Evaluate(vcc, r)
				dist := circuit.AbsoluteError(target, obtained)
				if dist > worst.Error {
					worst = Result{
						Error:      dist,
						Thresholds: obtained,
						Resistors:  r,
						Found:      true,
					}
				}
			}
		}
	}

	return worst
}
