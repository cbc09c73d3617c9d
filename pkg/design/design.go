package design

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/eseries"
	"github.com/charlie0129/schmitt/pkg/search"
	"github.com/charlie0129/schmitt/pkg/spec"
	"github.com/charlie0129/schmitt/pkg/tolerance"
)

// Options tune how a design is searched.
type Options struct {
	// Scales are the decade multipliers applied to the E24 series.
	Scales []float64
	// Workers is the number of goroutines sharing the nominal search.
	// 0 or 1 searches sequentially.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Scales:  append([]float64(nil), eseries.DefaultScales...),
		Workers: 1,
	}
}

// Validate checks s together with the run options. All violations are
// collected into a single *spec.ValidationError.
func Validate(s spec.Spec, opts Options) error {
	var violations []spec.Violation

	if err := s.Validate(); err != nil {
		ve, _ := spec.AsValidationError(err)
		violations = append(violations, ve.Violations...)
	}
	violations = append(violations, opts.violations()...)

	if len(violations) == 0 {
		return nil
	}
	return &spec.ValidationError{Violations: violations}
}

func (o Options) violations() []spec.Violation {
	var v []spec.Violation

	if len(o.Scales) == 0 {
		v = append(v, spec.Violation{Field: spec.FieldScales, Message: "at least one scale is required"})
	}
	for _, s := range o.Scales {
		if !(s > 0 && s <= eseries.MaxScale) {
			v = append(v, spec.Violation{Field: spec.FieldScales, Message: fmt.Sprintf("scale %g has to be: 0 < scale <= %g", s, eseries.MaxScale)})
		}
	}
	if o.Workers < 0 {
		v = append(v, spec.Violation{Field: spec.FieldWorkers, Message: fmt.Sprintf("it has to be: 0 <= workers, got %d", o.Workers)})
	}

	return v
}

// Run validates s and opts, then searches the best nominal design and its
// worst case under tolerance. No search runs when validation fails.
func Run(s spec.Spec, opts Options) (*Report, error) {
	if err := Validate(s, opts); err != nil {
		return nil, err
	}

	start := time.Now()
	target := s.Target()
	values := eseries.Expand(eseries.E24, opts.Scales)

	logrus.WithFields(s.LogrusFields()).WithFields(logrus.Fields{
		"candidates": len(values),
		"workers":    opts.Workers,
	}).Debug("searching resistor values")

	best := search.BestParallel(values, s.VCC, target, opts.Workers)
	worst := tolerance.WorstCase(best.Resistors, s.VCC, target, s.TolerancePercent)

	r := &Report{
		Spec:        s,
		Scales:      append([]float64(nil), opts.Scales...),
		Candidates:  len(values),
		Evaluations: best.Evaluations,
		Solution: Solution{
			Error:      best.Error,
			Thresholds: best.Thresholds,
			Delta:      best.Thresholds.Delta(target),
			Resistors:  best.Resistors,
		},
		WorstCase: WorstCase{
			Error:      worst.Error,
			Thresholds: worst.Thresholds,
			Resistors:  worst.Resistors,
			Found:      worst.Found,
		},
		Elapsed: time.Since(start),
	}
	if worst.Found {
		r.WorstCase.Delta = worst.Thresholds.Delta(target)
	}

	logrus.WithFields(logrus.Fields{
		"error":       r.Solution.Error,
		"resistors":   r.Solution.Resistors.String(),
		"worstError":  r.WorstCase.Error,
		"evaluations": r.Evaluations,
		"elapsed":     r.Elapsed,
	}).Debug("design finished")

	return r, nil
}
