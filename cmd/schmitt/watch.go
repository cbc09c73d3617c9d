package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/schmitt/pkg/eseries"
	"github.com/charlie0129/schmitt/pkg/events"
)

func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		GroupID: gDaemon,
		Short:   "Print designs as the daemon completes them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ch, err := newAPIClient().SubscribeEvents(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for ev := range ch {
				switch ev.Name {
				case events.DesignCompleted:
					p, err := events.DecodeAs[events.DesignCompletedEvent](ev)
					if err != nil {
						logrus.Warnf("failed to decode event %s: %v", ev.Name, err)
						continue
					}
					fmt.Fprintf(w, "%s VCC=%g V targets=%g/%g V -> R1=%s R2=%s R3=%s error=%s worst=%.6g V\n",
						time.Unix(p.Ts, 0).Format(time.Kitchen),
						p.VCC, p.LowTarget, p.HighTarget,
						eseries.FormatOhms(p.R1), eseries.FormatOhms(p.R2), eseries.FormatOhms(p.R3),
						errorText(p.Error, p.VCC), p.WorstError)
				case events.ConfigChanged:
					p, err := events.DecodeAs[events.ConfigChangedEvent](ev)
					if err != nil {
						logrus.Warnf("failed to decode event %s: %v", ev.Name, err)
						continue
					}
					fmt.Fprintf(w, "%s config %s\n", time.Unix(p.Ts, 0).Format(time.Kitchen), p.Reason)
				default:
					logrus.Debugf("ignoring event %s", ev.Name)
				}
			}
			return nil
		},
	}
}
