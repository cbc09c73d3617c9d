package tolerance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/schmitt/pkg/circuit"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		nominal float64
		percent float64
		want    [3]float64
	}{
		{name: "5%", nominal: 1000, percent: 5.0, want: [3]float64{950, 1000, 1050}},
		{name: "1%", nominal: 2400, percent: 1.0, want: [3]float64{2376, 2400, 2424}},
		{name: "0.1%", nominal: 10000, percent: 0.1, want: [3]float64{9990, 10000, 10010}},
		{name: "zero", nominal: 300, percent: 0, want: [3]float64{300, 300, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.nominal, tt.percent)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestWorstCaseIsMaximal(t *testing.T) {
	nominal := circuit.Resistors{R1: 2000, R2: 100, R3: 20}
	target := circuit.Thresholds{Low: 0.04, High: 0.3}

	for _, percent := range []float64{5.0, 1.0, 0.1} {
		got := WorstCase(nominal, 5.0, target, percent)
		require.True(t, got.Found)

		count := 0
		for _, r1 := range Expand(nominal.R1, percent) {
			for _, r2 := range Expand(nominal.R2, percent) {
				for _, r3 := range Expand(nominal.R3, percent) {
					count++
					obtained := circuit.Evaluate(5.0, circuit.Resistors{R1: r1, R2: r2, R3: r3})
					require.GreaterOrEqual(t, got.Error, circuit.AbsoluteError(target, obtained))
				}
			}
		}
		assert.Equal(t, 27, count)

		// The reported thresholds come from the reported triple.
		assert.Equal(t, got.Thresholds, circuit.Evaluate(5.0, got.Resistors))
		assert.Equal(t, got.Error, circuit.AbsoluteError(target, got.Thresholds))
	}
}

func TestWorstCaseReference(t *testing.T) {
	nominal := circuit.Resistors{R1: 2400, R2: 300, R3: 62000}
	target := circuit.Thresholds{Low: 0.555, High: 0.575}

	got := WorstCase(nominal, 5.0, target, 1.0)
	require.True(t, got.Found)
	assert.InDelta(t, 0.022044850863088716, got.Error, 1e-15)
	assert.InDelta(t, 0.5434590130260166, got.Thresholds.Low, 1e-15)
	assert.InDelta(t, 0.5644961361108947, got.Thresholds.High, 1e-15)

	// Idempotent.
	assert.Equal(t, got, WorstCase(nominal, 5.0, target, 1.0))
}

func TestWorstCaseGrowsWithTolerance(t *testing.T) {
	nominal := circuit.Resistors{R1: 2400, R2: 300, R3: 62000}
	target := circuit.Thresholds{Low: 0.555, High: 0.575}

	tight := WorstCase(nominal, 5.0, target, 0.1)
	loose := WorstCase(nominal, 5.0, target, 5.0)
	assert.Less(t, tight.Error, loose.Error)
}

func TestWorstCaseExactHit(t *testing.T) {
	// With zero tolerance every combination hits the target exactly.
	nominal := circuit.Resistors{R1: 1000, R2: 1000, R3: 1000}
	got := WorstCase(nominal, 3.0, circuit.Thresholds{Low: 1.0, High: 2.0}, 0)
	assert.False(t, got.Found)
	assert.Equal(t, 0.0, got.Error)
	assert.Equal(t, circuit.Thresholds{}, got.Thresholds)
}
