// Package circuit models the DC switching points of an asymmetrical inverted
// Schmitt trigger running from a single supply:
//
//   - Resistors: the R1, R2, R3 triple of one circuit configuration
//   - Thresholds: the low/high input voltages at which the output flips
//   - Evaluate: the closed-form divider equations mapping one to the other
//
// It also provides the two distance metrics used to compare thresholds with
// their targets. Both search stages evaluate circuits only through Evaluate.
package circuit
