package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/charlie0129/schmitt/pkg/circuit"
	"github.com/charlie0129/schmitt/pkg/design"
	"github.com/charlie0129/schmitt/pkg/eseries"
)

func printReport(w io.Writer, r *design.Report) {
	s := r.Spec

	fmt.Fprintln(w, bold("Specification:"))
	fmt.Fprintf(w, "  VCC: %s\n", bold("%g V", s.VCC))
	fmt.Fprintf(w, "  Low threshold target: %s\n", bold("%g V", s.LowTarget))
	fmt.Fprintf(w, "  High threshold target: %s\n", bold("%g V", s.HighTarget))
	fmt.Fprintf(w, "  Resistor tolerance: %s\n", bold("%g%%", s.TolerancePercent))
	fmt.Fprintln(w)

	sol := r.Solution
	fmt.Fprintln(w, bold("Solution:"))
	fmt.Fprintf(w, "  Best error: %s\n", errorText(sol.Error, s.VCC))
	printThresholds(w, "", sol.Thresholds, sol.Delta)
	printResistors(w, sol.Resistors, s.TolerancePercent)
	fmt.Fprintf(w, "  Searched %d combinations of %d values in %s\n", r.Evaluations, r.Candidates, r.Elapsed)
	fmt.Fprintln(w)

	worst := r.WorstCase
	fmt.Fprintln(w, bold("Resistor tolerance analysis:"))
	if !worst.Found {
		fmt.Fprintf(w, "  Worst error: %s\n", bold("n/a (no drift within tolerance)"))
		return
	}
	fmt.Fprintf(w, "  Worst error: %s\n", errorText(worst.Error, s.VCC))
	printThresholds(w, "Worst ", worst.Thresholds, worst.Delta)
	fmt.Fprintf(w, "  At: R1=%s R2=%s R3=%s\n",
		eseries.FormatOhms(worst.Resistors.R1),
		eseries.FormatOhms(worst.Resistors.R2),
		eseries.FormatOhms(worst.Resistors.R3))
}

func printThresholds(w io.Writer, prefix string, t, delta circuit.Thresholds) {
	fmt.Fprintf(w, "  %slow threshold obtained: %s, delta: %s\n", prefix, bold("%.6f V", t.Low), fmt.Sprintf("%.6f V", delta.Low))
	fmt.Fprintf(w, "  %shigh threshold obtained: %s, delta: %s\n", prefix, bold("%.6f V", t.High), fmt.Sprintf("%.6f V", delta.High))
}

func printResistors(w io.Writer, r circuit.Resistors, tol float64) {
	for _, v := range []struct {
		name string
		ohms float64
	}{
		{"R1", r.R1},
		{"R2", r.R2},
		{"R3", r.R3},
	} {
		fmt.Fprintf(w, "  %s: %s (%g Ohms %g%%)\n", v.name, bold("%s", eseries.FormatOhms(v.ohms)), v.ohms, tol)
	}
}

// errorText colors an error green when it is below 1% of the supply.
func errorText(e, vcc float64) string {
	if e < vcc*0.01 {
		return color.New(color.Bold, color.FgGreen).Sprintf("%.6g V", e)
	}
	return color.New(color.Bold, color.FgRed).Sprintf("%.6g V", e)
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}
