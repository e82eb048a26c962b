package tracking

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

// MapSurface receives interpolated rider positions. The core only writes to
// the map, it never reads back from it.
type MapSurface interface {
	SetPosition(Coordinate)
}

// StatusSink receives status and ETA text updates.
type StatusSink interface {
	SetStatus(text string)
	SetETA(text string)
}

// Simulator drives the tracking widget for one order: a fast tick for rider
// position and status, a slow tick for the ETA countdown. Both loops stop
// permanently once progress reaches 1.
type Simulator struct {
	OrderDate   time.Time
	Destination Coordinate

	// Nil surfaces are skipped.
	Map  MapSurface
	Sink StatusSink

	// Clock is injectable for tests; nil means time.Now.
	Clock func() time.Time

	// Tick cadences; zero values take the widget defaults of 2s and 60s.
	PositionInterval time.Duration
	ETAInterval      time.Duration
}

var errArrived = errors.New("arrived")

// Run evaluates once immediately, then keeps re-evaluating on both tickers
// until arrival or context cancellation. It returns nil on arrival and the
// context error on cancellation; there is nothing in flight to interrupt
// beyond the next tick.
func (s *Simulator) Run(ctx context.Context) error {
	now := s.nowFunc()

	posEvery := s.PositionInterval
	if posEvery <= 0 {
		posEvery = 2 * time.Second
	}
	etaEvery := s.ETAInterval
	if etaEvery <= 0 {
		etaEvery = time.Minute
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(posEvery)
		defer ticker.Stop()

		for {
			if s.step(now()) {
				return errArrived
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(etaEvery)
		defer ticker.Stop()

		for {
			t := now()
			if s.Sink != nil {
				s.Sink.SetETA(ETAText(s.OrderDate, t))
			}
			if RemainingMinutes(s.OrderDate, t) == 0 {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errArrived) {
		return nil
	}
	return err
}

// Handle stops a running simulation. Stop is idempotent and waits for both
// loops to unwind, so no timers outlive a dismissed widget.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed when the simulation has fully stopped, whether by arrival
// or by Stop.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err reports how the simulation ended: nil on arrival, context.Canceled
// after Stop. Valid once Done is closed.
func (h *Handle) Err() error {
	return h.err
}

// Start launches Run in the background and returns a cancellation handle.
func (s *Simulator) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		h.err = s.Run(ctx)
	}()

	return h
}

// step pushes one position/status update and reports arrival.
func (s *Simulator) step(t time.Time) bool {
	p := Progress(s.OrderDate, t)

	if s.Map != nil {
		s.Map.SetPosition(Interpolate(Origin, s.dest(), p))
	}
	if s.Sink != nil {
		s.Sink.SetStatus(StatusAt(p).Display())
	}

	return p >= 1
}

func (s *Simulator) dest() Coordinate {
	if s.Destination == (Coordinate{}) {
		return DefaultDestination
	}
	return s.Destination
}

func (s *Simulator) nowFunc() func() time.Time {
	if s.Clock != nil {
		return s.Clock
	}
	return time.Now
}
