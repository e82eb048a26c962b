package tracking_test

import (
	"testing"
	"time"

	"github.com/hungergenie/storefront/internal/tracking"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, time.December, 6, 19, 0, 0, 0, time.UTC)

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{name: "at placement", now: t0, want: 0},
		{name: "before placement clamps to 0", now: t0.Add(-time.Minute), want: 0},
		{name: "nine minutes", now: t0.Add(9 * time.Minute), want: 0.3},
		{name: "halfway", now: t0.Add(15 * time.Minute), want: 0.5},
		{name: "twenty seven minutes", now: t0.Add(27 * time.Minute), want: 0.9},
		{name: "exactly thirty minutes", now: t0.Add(30 * time.Minute), want: 1},
		{name: "beyond transit clamps to 1", now: t0.Add(2 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tracking.Progress(t0, tt.now), 1e-9)
		})
	}
}

func TestProgress_MonotonicallyNonDecreasing(t *testing.T) {
	prev := 0.0
	for m := 0; m <= 90; m++ {
		p := tracking.Progress(t0, t0.Add(time.Duration(m)*time.Minute))
		assert.GreaterOrEqual(t, p, prev, "progress must never move backwards")
		prev = p
	}
}

func TestStatusAt_Boundaries(t *testing.T) {
	tests := []struct {
		progress float64
		want     tracking.Status
	}{
		{progress: 0, want: tracking.StatusPreparing},
		{progress: 0.29, want: tracking.StatusPreparing},
		{progress: 0.3, want: tracking.StatusOnTheWay},
		{progress: 0.5, want: tracking.StatusOnTheWay},
		{progress: 0.59, want: tracking.StatusOnTheWay},
		{progress: 0.6, want: tracking.StatusNearby},
		{progress: 0.89, want: tracking.StatusNearby},
		{progress: 0.9, want: tracking.StatusAlmostThere},
		{progress: 0.99, want: tracking.StatusAlmostThere},
		{progress: 1.0, want: tracking.StatusArrived},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tracking.StatusAt(tt.progress), "progress=%v", tt.progress)
	}
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Preparing your order...", tracking.StatusPreparing.Display())
	assert.Equal(t, "Rider is on the way...", tracking.StatusOnTheWay.Display())
	assert.Equal(t, "Rider is nearby...", tracking.StatusNearby.Display())
	assert.Equal(t, "Almost there!", tracking.StatusAlmostThere.Display())
	assert.Equal(t, "Rider has arrived!", tracking.StatusArrived.Display())
}

func TestInterpolate_MidpointScenario(t *testing.T) {
	// Order placed at T0, checked at T0+15min: progress 0.5, rider at the
	// midpoint, status "on the way" (0.5 is in [0.3, 0.6)).
	now := t0.Add(15 * time.Minute)
	p := tracking.Progress(t0, now)
	assert.InDelta(t, 0.5, p, 1e-9)

	dest := tracking.Coordinate{Lat: 40.7580, Lng: -73.9855}
	pos := tracking.Interpolate(tracking.Origin, dest, p)
	assert.InDelta(t, (40.7128+40.7580)/2, pos.Lat, 1e-9)
	assert.InDelta(t, (-74.0060+-73.9855)/2, pos.Lng, 1e-9)

	assert.Equal(t, tracking.StatusOnTheWay, tracking.StatusAt(p))
	assert.NotEqual(t, tracking.StatusNearby, tracking.StatusAt(p))
}

func TestInterpolate_Endpoints(t *testing.T) {
	dest := tracking.Coordinate{Lat: 40.7580, Lng: -73.9855}

	assert.Equal(t, tracking.Origin, tracking.Interpolate(tracking.Origin, dest, 0))
	assert.Equal(t, dest, tracking.Interpolate(tracking.Origin, dest, 1))
}

func TestRemainingMinutes(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "at placement", now: t0, want: 30},
		{name: "partial minute rounds up", now: t0.Add(90 * time.Second), want: 29},
		{name: "one minute left", now: t0.Add(29*time.Minute + 30*time.Second), want: 1},
		{name: "at arrival", now: t0.Add(30 * time.Minute), want: 0},
		{name: "past arrival floors at zero", now: t0.Add(45 * time.Minute), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracking.RemainingMinutes(t0, tt.now))
		})
	}
}

func TestETAText(t *testing.T) {
	assert.Equal(t, "ETA: 30 min", tracking.ETAText(t0, t0))
	assert.Equal(t, "ETA: 15 min", tracking.ETAText(t0, t0.Add(15*time.Minute)))
	assert.Equal(t, "Arriving now!", tracking.ETAText(t0, t0.Add(30*time.Minute)))
}

func TestActive(t *testing.T) {
	assert.True(t, tracking.Active(t0, t0))
	assert.True(t, tracking.Active(t0, t0.Add(59*time.Minute)))
	assert.False(t, tracking.Active(t0, t0.Add(60*time.Minute)))
	assert.False(t, tracking.Active(t0, t0.Add(24*time.Hour)))
}
