package eseries

import (
	"math"
	"strconv"
)

var prefixes = []struct {
	factor float64
	symbol string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
}

// FormatOhms renders a resistance with an SI prefix, e.g. 2400 -> "2.4k",
// 62000 -> "62k", 300 -> "300". Values are rounded to 4 significant digits
// and never printed in exponent form.
func FormatOhms(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	for _, p := range prefixes {
		if math.Abs(v) >= p.factor {
			return significant(v/p.factor) + p.symbol
		}
	}
	return significant(v)
}

// significant rounds v to 4 significant digits and prints it in plain
// decimal notation.
func significant(v float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 4, 64), 64)
	if err != nil {
		rounded = v
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
