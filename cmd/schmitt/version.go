package main

import (
	"github.com/spf13/cobra"

	"github.com/charlie0129/schmitt/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	var withDaemon bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
			if !withDaemon {
				return
			}
			daemonVersion, err := newAPIClient().GetVersion()
			if err != nil {
				cmd.Printf("daemon: unavailable (%v)\n", err)
				return
			}
			cmd.Printf("daemon: %s\n", daemonVersion)
		},
	}

	cmd.Flags().BoolVar(&withDaemon, "daemon", false, "also print the daemon version")

	return cmd
}
