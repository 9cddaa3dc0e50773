package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"clubsite/internal/event"
	"clubsite/internal/model"
)

func (c *cli) lookupEvent(id string) (model.Event, error) {
	catalog, err := event.NewCatalog(c.cfg.EventsFile, c.log)
	if err != nil {
		return model.Event{}, err
	}
	ev, ok := catalog.Get(id)
	if !ok {
		return model.Event{}, fmt.Errorf("event %q not found in %s", id, c.cfg.EventsFile)
	}
	return ev, nil
}

func newICSCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "ics <event-id>",
		Short: "Write an event as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := c.lookupEvent(args[0])
			if err != nil {
				return err
			}
			body := event.ICS(ev, time.Now())
			if out == "" {
				_, err := cmd.OutOrStdout().Write(body)
				return err
			}
			return os.WriteFile(out, body, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newCountdownCmd(c *cli) *cobra.Command {
	var every time.Duration
	cmd := &cobra.Command{
		Use:   "countdown <event-id>",
		Short: "Print the time left until an event starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := c.lookupEvent(args[0])
			if err != nil {
				return err
			}
			if every <= 0 {
				return fmt.Errorf("--every must be positive, got %s", every)
			}
			w := cmd.OutOrStdout()
			err = event.WatchCountdown(cmd.Context(), ev.Start, every, func(r event.Remaining) {
				if r.Zero() {
					fmt.Fprintf(w, "%s has started\n", ev.Title)
					return
				}
				fmt.Fprintf(w, "%s: %dd %02dh %02dm\n", ev.Title, r.Days, r.Hours, r.Minutes)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&every, "every", time.Minute, "refresh interval")
	return cmd
}
