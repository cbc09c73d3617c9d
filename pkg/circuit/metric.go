package circuit

import "math"

// Delta returns the absolute distance of each threshold from target.
func (t Thresholds) Delta(target Thresholds) Thresholds {
	return Thresholds{
		Low:  math.Abs(target.Low - t.Low),
		High: math.Abs(target.High - t.High),
	}
}

// EuclideanError is the straight-line distance between target and obtained
// in the (low, high) plane. The nominal search minimizes it.
func EuclideanError(target, obtained Thresholds) float64 {
	return math.Sqrt(math.Pow(target.Low-obtained.Low, 2) +
		math.Pow(target.High-obtained.High, 2))
}

// AbsoluteError is the sum of the absolute deltas of both thresholds. The
// tolerance analysis maximizes it.
func AbsoluteError(target, obtained Thresholds) float64 {
	return math.Abs(target.Low-obtained.Low) + math.Abs(target.High-obtained.High)
}
