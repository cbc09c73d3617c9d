// Package search finds the resistor triple whose thresholds come closest to
// a target pair by enumerating every R1, R2, R3 combination of a candidate
// value set.
package search

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/charlie0129/schmitt/pkg/circuit"
)

// Result is the best configuration found by a search.
type Result struct {
	// Error is the Euclidean distance between Thresholds and the target.
	Error      float64            `json:"error"`
	Thresholds circuit.Thresholds `json:"thresholds"`
	Resistors  circuit.Resistors  `json:"resistors"`
	// Evaluations is the number of circuits evaluated.
	Evaluations int `json:"evaluations"`
}

// Best evaluates all len(values)^3 triples, repetition allowed, and returns
// the one with the smallest Euclidean error. Ties keep the first triple in
// enumeration order: lowest R1 index, then R2, then R3.
//
// values must not be empty.
func Best(values []float64, vcc float64, target circuit.Thresholds) Result {
	return bestIn(values, values, vcc, target)
}

// BestParallel is Best with the R1 range split into contiguous chunks that
// are searched concurrently. Partial results are merged in chunk order, so
// the returned triple is the same one Best returns, ties included.
func BestParallel(values []float64, vcc float64, target circuit.Thresholds, workers int) Result {
	if workers > len(values) {
		workers = len(values)
	}
	if workers <= 1 {
		return Best(values, vcc, target)
	}

	partials := make([]Result, workers)
	chunk := (len(values) + workers - 1) / workers

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(values))
		if lo >= hi {
			partials[i] = Result{Error: math.Inf(1)}
			continue
		}
		i := i
		g.Go(func() error {
			partials[i] = bestIn(values[lo:hi], values, vcc, target)
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	best := Result{Error: math.Inf(1)}
	evaluations := 0
	for _, p := range partials {
		evaluations += p.Evaluations
		if p.Error < best.Error {
			best = p
		}
	}
	best.Evaluations = evaluations

	return best
}

// bestIn searches R1 over r1Values and R2, R3 over values.
func bestIn(r1Values, values []float64, vcc float64, target circuit.Thresholds) Result {
	// No real error reaches sqrt(2)*vcc, +Inf is always replaced.
	best := Result{Error: math.Inf(1)}

	for _, r1 := range r1Values {
		for _, r2 := range values {
			for _, r3 := range values {
				r := circuit.Resistors{R1: r1, R2: r2, R3: r3}
				obtained := circuit.Evaluate(vcc, r)
				dist := circuit.EuclideanError(target, obtained)
				if dist < best.Error {
					best.Error = dist
					best.Thresholds = obtained
					best.Resistors = r
				}
			}
		}
	}
	best.Evaluations = len(r1Values) * len(values) * len(values)

	return best
}
