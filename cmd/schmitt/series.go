package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charlie0129/schmitt/pkg/config"
	"github.com/charlie0129/schmitt/pkg/eseries"
	"github.com/charlie0129/schmitt/pkg/spec"
)

func NewSeriesCommand() *cobra.Command {
	var scales []float64

	cmd := &cobra.Command{
		Use:     "series",
		GroupID: gDesign,
		Short:   "Print the candidate resistor values",
		Long: `Print the candidate resistor values.

The E24 series is multiplied by every scale, one line per scale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("scales") {
				conf, err := config.NewFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				scales = conf.Scales()
			}

			values := eseries.Expand(eseries.E24, scales)
			w := cmd.OutOrStdout()
			for i := range scales {
				row := values[i*len(eseries.E24) : (i+1)*len(eseries.E24)]
				names := make([]string, 0, len(row))
				for _, v := range row {
					names = append(names, eseries.FormatOhms(v))
				}
				fmt.Fprintf(w, "%s\n", strings.Join(names, " "))
			}
			fmt.Fprintf(w, "%s candidate values\n", bold("%d", len(values)))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&scales, "scales", nil, "decade multipliers applied to the E24 series")

	return cmd
}

func NewTolerancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tolerances",
		GroupID: gDesign,
		Short:   "Print the supported resistor tolerances",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, t := range spec.SupportedTolerances {
				fmt.Fprintf(cmd.OutOrStdout(), "%g%%\n", t)
			}
		},
	}
}
