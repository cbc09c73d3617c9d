package circuit

import "fmt"

// Resistors is one R1, R2, R3 configuration, in Ohms.
type Resistors struct {
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
	R3 float64 `json:"r3"`
}

func (r Resistors) String() string {
	return fmt.Sprintf("R1=%g R2=%g R3=%g", r.R1, r.R2, r.R3)
}

// Thresholds is a pair of switching voltages, in Volts.
type Thresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Parallel returns the equivalent resistance of a and b in parallel.
func Parallel(a, b float64) float64 {
	return (a * b) / (a + b)
}

// Evaluate computes the thresholds produced by r when powered from vcc.
//
// When the output is low, R2 and R3 are both pulled to ground and form the
// bottom leg of a divider with R1. When the output is high, R1 and R3 are
// both pulled to vcc and form the top leg of a divider with R2.
//
// vcc and all resistors must be positive.
func Evaluate(vcc float64, r Resistors) Thresholds {
	rLow := Parallel(r.R2, r.R3)
	rHigh := Parallel(r.R1, r.R3)

	return Thresholds{
		Low:  vcc * rLow / (r.R1 + rLow),
		High: vcc * r.R2 / (r.R2 + rHigh),
	}
}
