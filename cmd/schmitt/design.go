package main

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/schmitt/pkg/design"
)

func NewDesignCommand() *cobra.Command {
	var (
		flags    specFlags
		asJSON   bool
		onDaemon bool
	)

	cmd := &cobra.Command{
		Use:     "design",
		GroupID: gDesign,
		Short:   "Search E24 resistor values for the target thresholds",
		Long: `Search E24 resistor values for the target thresholds.

Every combination of R1, R2 and R3 is evaluated, and the one whose thresholds
are closest to the targets (Euclidean distance) wins. The winner is then
analyzed under resistor tolerance: each resistor is moved to its low edge,
nominal value and high edge, and the largest drift (sum of absolute deltas)
is reported.

Values not given as flags are taken from the config file.`,
		Example: `  schmitt design --vcc 5 --low 0.555 --high 0.575 --tolerance 1
  schmitt design --tolerance 0.1 --workers 8 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := flags.request(cmd.Flags())

			var (
				report *design.Report
				err    error
			)
			if onDaemon {
				report, err = newAPIClient().Design(req)
			} else {
				report, err = runLocal(req)
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	f := cmd.Flags()
	flags.register(f)
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	f.BoolVar(&onDaemon, "remote", false, "run the design on the schmitt daemon")

	return cmd
}

func runLocal(req design.Request) (*design.Report, error) {
	s, opts, err := localInputs(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logrus.WithFields(s.LogrusFields()).Debug("designing locally")
	return design.Run(s, opts)
}

func NewValidateCommand() *cobra.Command {
	var (
		flags    specFlags
		onDaemon bool
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: gDesign,
		Short:   "Check the specification without searching",
		Long: `Check the specification without searching.

All violated constraints are listed at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := flags.request(cmd.Flags())

			if onDaemon {
				if err := newAPIClient().Validate(req); err != nil {
					return err
				}
			} else {
				s, opts, err := localInputs(req)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				if err := design.Validate(s, opts); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "specification is valid")
			return nil
		},
	}

	f := cmd.Flags()
	flags.register(f)
	f.BoolVar(&onDaemon, "remote", false, "validate against the schmitt daemon config")

	return cmd
}
