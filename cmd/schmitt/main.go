package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/schmitt/pkg/client"
	"github.com/charlie0129/schmitt/pkg/spec"
)

var (
	logLevel       = "info"
	unixSocketPath = filepath.Join(os.TempDir(), "schmitt.sock")
	configPath     = defaultConfigPath()
)

var (
	gDesign       = "Design:"
	gDaemon       = "Daemon:"
	commandGroups = []string{
		gDesign,
		gDaemon,
	}
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "schmitt.json")
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// handleCmdError prints err once, with hints for the common failures.
// Cobra's own error output is silenced on the root command.
func handleCmdError(w io.Writer, err error) {
	if ve, ok := spec.AsValidationError(err); ok {
		fmt.Fprintln(w, "Error: the specification is invalid, nothing was searched")
		for _, v := range ve.Violations {
			fmt.Fprintf(w, "  - %s\n", v)
		}
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(w, "\nError: schmitt daemon is not running")
		fmt.Fprintln(w, "Start it with 'schmitt daemon', or drop '--remote' to design locally")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(w, "\nError: Permission Denied")
		fmt.Fprintln(w, "  - Restart the daemon with the '--always-allow-non-root-access' flag to grant permissions to your user")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(os.Stderr, err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schmitt",
		Short: "schmitt designs asymmetrical inverted Schmitt triggers from E24 resistors",
		Long: `schmitt designs an asymmetrical inverted Schmitt trigger with a single supply.

Given the supply voltage, the two target switching thresholds and the resistor
tolerance, it searches every combination of E24 resistor values for R1, R2 and
R3, reports the best one, and analyzes how far its thresholds can drift when
every resistor sits at the edge of its tolerance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "schmitt daemon unix socket path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewDesignCommand(),
		NewValidateCommand(),
		NewSeriesCommand(),
		NewTolerancesCommand(),
		NewDaemonCommand(),
		NewConfigCommand(),
		NewWatchCommand(),
		NewVersionCommand(),
	)

	return cmd
}
