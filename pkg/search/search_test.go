package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/schmitt/pkg/circuit"
	"github.com/charlie0129/schmitt/pkg/eseries"
)

var referenceTarget = circuit.Thresholds{Low: 0.555, High: 0.575}

func TestBestIsExhaustive(t *testing.T) {
	values := eseries.Expand([]float64{1.0, 2.0}, []float64{10, 100})
	targets := []circuit.Thresholds{
		{Low: 1.0, High: 2.0},
		{Low: 0.555, High: 0.575},
		{Low: 2.4, High: 4.9},
	}

	for _, target := range targets {
		got := Best(values, 5.0, target)
		assert.Equal(t, 64, got.Evaluations)

		for _, r1 := range values {
			for _, r2 := range values {
				for _, r3 := range values {
					r := circuit.Resistors{R1: r1, R2: r2, R3: r3}
					e := circuit.EuclideanError(target, circuit.Evaluate(5.0, r))
					require.LessOrEqual(t, got.Error, e, "target %+v, %s", target, r)
				}
			}
		}
	}
}

func TestBestTieKeepsFirst(t *testing.T) {
	// Every triple drawn from a single repeated value evaluates identically.
	values := []float64{1000, 1000, 1000}
	got := Best(values, 3.0, circuit.Thresholds{Low: 1.0, High: 2.0})
	assert.Equal(t, 0.0, got.Error)
	assert.Equal(t, circuit.Resistors{R1: 1000, R2: 1000, R3: 1000}, got.Resistors)

	// Scaling all three resistors leaves the thresholds unchanged, so the
	// first-enumerated scale must win.
	values = []float64{10, 20, 1000, 2000}
	got = Best(values, 3.0, circuit.Thresholds{Low: 1.0, High: 2.0})
	assert.Equal(t, circuit.Resistors{R1: 10, R2: 10, R3: 10}, got.Resistors)
}

func TestBestReference(t *testing.T) {
	values := eseries.Expand(eseries.E24, eseries.DefaultScales)
	got := Best(values, 5.0, referenceTarget)

	require.LessOrEqual(t, got.Error, 0.01)
	assert.InDelta(t, 0.0018693093803453344, got.Error, 1e-15)
	assert.Equal(t, circuit.Resistors{R1: 2400, R2: 300, R3: 62000}, got.Resistors)
	assert.Equal(t, 96*96*96, got.Evaluations)

	// Feeding the triple back reproduces the reported thresholds exactly.
	roundTrip := circuit.Evaluate(5.0, got.Resistors)
	assert.Equal(t, got.Thresholds, roundTrip)
	assert.Equal(t, got.Error, circuit.EuclideanError(referenceTarget, roundTrip))
}

func TestBestIdempotent(t *testing.T) {
	values := eseries.Expand(eseries.E24, []float64{1000})
	first := Best(values, 5.0, referenceTarget)
	second := Best(values, 5.0, referenceTarget)
	assert.Equal(t, first, second)
}

func TestBestErrorBound(t *testing.T) {
	values := eseries.Expand(eseries.E24, []float64{1000})
	got := Best(values, 12.0, circuit.Thresholds{Low: 0, High: 12})
	assert.False(t, math.IsInf(got.Error, 0))
	assert.LessOrEqual(t, got.Error, math.Sqrt2*12)
}

func TestBestParallelMatchesBest(t *testing.T) {
	values := eseries.Expand(eseries.E24, []float64{100, 1000})
	tieValues := []float64{10, 20, 1000, 2000, 10, 20}

	tests := []struct {
		name    string
		values  []float64
		target  circuit.Thresholds
		workers int
	}{
		{name: "single worker", values: values, target: referenceTarget, workers: 1},
		{name: "zero workers", values: values, target: referenceTarget, workers: 0},
		{name: "even split", values: values, target: referenceTarget, workers: 4},
		{name: "uneven split", values: values, target: referenceTarget, workers: 7},
		{name: "more workers than values", values: values[:5], target: referenceTarget, workers: 64},
		{name: "ties across chunks", values: tieValues, target: circuit.Thresholds{Low: 1.0, High: 2.0}, workers: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Best(tt.values, 5.0, tt.target)
			got := BestParallel(tt.values, 5.0, tt.target, tt.workers)
			assert.Equal(t, want, got)
		})
	}
}
