// Package design runs the complete design flow for one Spec:
//
//   - validate the Spec and the run options
//   - expand the E24 series over the configured scales
//   - search every resistor triple for the best nominal fit
//   - analyze the winner under worst-case resistor tolerance
//
// Report is the JSON contract shared by the CLI, the daemon and the client.
package design
