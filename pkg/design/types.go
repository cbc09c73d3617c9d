package design

import (
	"time"

	"github.com/charlie0129/schmitt/pkg/circuit"
	"github.com/charlie0129/schmitt/pkg/spec"
)

// Solution is the best nominal design.
type Solution struct {
	// Error is the Euclidean distance from the targets, in Volts.
	Error      float64            `json:"error"`
	Thresholds circuit.Thresholds `json:"thresholds"`
	// Delta holds the absolute distance of each threshold from its target.
	Delta     circuit.Thresholds `json:"delta"`
	Resistors circuit.Resistors  `json:"resistors"`
}

// WorstCase is the largest drift of the nominal design under tolerance.
type WorstCase struct {
	// Error is the sum of the absolute threshold deltas, in Volts.
	Error      float64            `json:"error"`
	Thresholds circuit.Thresholds `json:"thresholds"`
	Delta      circuit.Thresholds `json:"delta"`
	Resistors  circuit.Resistors  `json:"resistors"`
	Found      bool               `json:"found"`
}

// Report is the outcome of one design run.
type Report struct {
	Spec        spec.Spec     `json:"spec"`
	Scales      []float64     `json:"scales"`
	Candidates  int           `json:"candidates"`
	Evaluations int           `json:"evaluations"`
	Solution    Solution      `json:"solution"`
	WorstCase   WorstCase     `json:"worstCase"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Request carries optional overrides for a design run. Nil fields keep the
// value they are resolved against.
type Request struct {
	VCC              *float64  `json:"vcc,omitempty"`
	LowTarget        *float64  `json:"lowTarget,omitempty"`
	HighTarget       *float64  `json:"highTarget,omitempty"`
	TolerancePercent *float64  `json:"tolerancePercent,omitempty"`
	Scales           []float64 `json:"scales,omitempty"`
	Workers          *int      `json:"workers,omitempty"`
}

// Resolve applies the overrides in r on top of s and opts.
func (r Request) Resolve(s spec.Spec, opts Options) (spec.Spec, Options) {
	if r.VCC != nil {
		s.VCC = *r.VCC
	}
	if r.LowTarget != nil {
		s.LowTarget = *r.LowTarget
	}
	if r.HighTarget != nil {
		s.HighTarget = *r.HighTarget
	}
	if r.TolerancePercent != nil {
		s.TolerancePercent = *r.TolerancePercent
	}
	if len(r.Scales) > 0 {
		opts.Scales = append([]float64(nil), r.Scales...)
	}
	if r.Workers != nil {
		opts.Workers = *r.Workers
	}
	return s, opts
}
