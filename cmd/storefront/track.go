package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	orderapp "github.com/hungergenie/storefront/internal/order/app"
	"github.com/hungergenie/storefront/internal/tracking"
	"github.com/hungergenie/storefront/pkg/shutdown"
	"github.com/spf13/cobra"
)

func trackCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Follow the simulated delivery of the last order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			order, err := (*a).orders.Last(cmd.Context())
			if errors.Is(err, orderapp.ErrNoOrder) {
				fmt.Fprintln(out, "No recent order. Try `storefront menu` to get started.")
				return nil
			}
			if err != nil {
				return err
			}

			now := time.Now()
			if !tracking.Active(order.OrderDate, now) {
				fmt.Fprintln(out, "No active delivery.")
				return nil
			}

			fmt.Fprintf(out, "Ordered: %s\n", order.OrderDate.Format("3:04 PM"))

			sim := &tracking.Simulator{
				OrderDate:   order.OrderDate,
				Destination: tracking.Coordinate{Lat: order.Delivery.Lat, Lng: order.Delivery.Lng},
				Map:         &consoleMap{out: out},
				Sink:        &consoleSink{out: out},
			}

			ctx, cancel := shutdown.WithSignals(cmd.Context())
			defer cancel()

			if err := sim.Run(ctx); err != nil {
				if errors.Is(err, ctx.Err()) {
					fmt.Fprintln(out, "Tracking dismissed.")
					return nil
				}
				return err
			}
			return nil
		},
	}
}

// consoleMap stands in for the map widget: marker updates become lines.
type consoleMap struct {
	out io.Writer
}

func (m *consoleMap) SetPosition(c tracking.Coordinate) {
	fmt.Fprintf(m.out, "rider at %.4f, %.4f\n", c.Lat, c.Lng)
}

type consoleSink struct {
	out io.Writer

	lastStatus string
	lastETA    string
}

func (s *consoleSink) SetStatus(text string) {
	if text == s.lastStatus {
		return
	}
	s.lastStatus = text
	fmt.Fprintln(s.out, text)
}

func (s *consoleSink) SetETA(text string) {
	if text == s.lastETA {
		return
	}
	s.lastETA = text
	fmt.Fprintln(s.out, text)
}
