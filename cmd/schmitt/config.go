package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/schmitt/pkg/config"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: gDaemon,
		Short:   "Show or change the daemon's default specification",
	}

	cmd.AddCommand(newConfigShowCommand(), newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the daemon config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := newAPIClient().GetConfig()
			if err != nil {
				return err
			}

			conf := config.NewFileFromConfig(raw, "")
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, bold("Daemon configuration:"))
			fmt.Fprintf(w, "  VCC: %s\n", bold("%g V", conf.VCC()))
			fmt.Fprintf(w, "  Low threshold target: %s\n", bold("%g V", conf.LowTarget()))
			fmt.Fprintf(w, "  High threshold target: %s\n", bold("%g V", conf.HighTarget()))
			fmt.Fprintf(w, "  Resistor tolerance: %s\n", bold("%g%%", conf.TolerancePercent()))
			fmt.Fprintf(w, "  Scales: %s\n", bold("%v", conf.Scales()))
			fmt.Fprintf(w, "  Workers: %s\n", bold("%d", conf.Workers()))
			fmt.Fprintf(w, "  Allow non-root users to access the daemon: %s\n", bool2Text(conf.AllowNonRootAccess()))
			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	var flags specFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the daemon's default specification",
		Long: `Change the daemon's default specification.

Only the given flags are changed. The result is validated as a whole and
rejected with every violation listed.`,
		Example: `  schmitt config set --vcc 3.3 --tolerance 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ret, err := newAPIClient().SetConfig(flags.request(cmd.Flags()))
			if err != nil {
				return fmt.Errorf("failed to set config: %w", err)
			}

			if ret != "" {
				logrus.Debugf("daemon responded: %s", ret)
			}
			logrus.Infof("successfully updated the default specification")
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
