package eseries

// E24 is the standard series of 24 resistor values per decade.
var E24 = []float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2,
	2.4, 2.7, 3.0, 3.3, 3.6, 3.9, 4.3, 4.7, 5.1,
	5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// DefaultScales spans 100 Ohms to 910 kOhms. Opamp circuits are usually
// kept between 1k and 100k, the range is extended one decade each way.
var DefaultScales = []float64{100, 1000, 10000, 100000}

// MaxScale bounds a scale so that products of two expanded values, as
// computed for parallel resistances, stay finite.
const MaxScale = 1e12

// Expand returns every digit multiplied by every scale, scale-major.
// Duplicates are kept.
func Expand(digits, scales []float64) []float64 {
	values := make([]float64, 0, len(digits)*len(scales))
	for _, scale := range scales {
		for _, d := range digits {
			values = append(values, d*scale)
		}
	}
	return values
}
