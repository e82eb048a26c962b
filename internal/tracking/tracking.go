// Package tracking simulates a delivery in flight. Position and status are
// pure functions of the order's placement time and the current clock; no
// real routing or geolocation is involved.
package tracking

import (
	"fmt"
	"math"
	"time"
)

// TransitDuration is the fixed simulated ride from kitchen to door.
const TransitDuration = 30 * time.Minute

// ActiveWindow bounds how long after placement an order still counts as an
// active delivery worth showing.
const ActiveWindow = 60 * time.Minute

type Coordinate struct {
	Lat float64
	Lng float64
}

// Origin is the restaurant location the rider departs from.
var Origin = Coordinate{Lat: 40.7128, Lng: -74.0060}

// DefaultDestination stands in when an order carries no drop-off coordinates.
var DefaultDestination = Coordinate{Lat: 40.7580, Lng: -73.9855}

type Status string

const (
	StatusPreparing   Status = "preparing"
	StatusOnTheWay    Status = "on the way"
	StatusNearby      Status = "nearby"
	StatusAlmostThere Status = "almost there"
	StatusArrived     Status = "arrived"
)

var statusText = map[Status]string{
	StatusPreparing:   "Preparing your order...",
	StatusOnTheWay:    "Rider is on the way...",
	StatusNearby:      "Rider is nearby...",
	StatusAlmostThere: "Almost there!",
	StatusArrived:     "Rider has arrived!",
}

func (s Status) Display() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return string(s)
}

// Progress is the elapsed fraction of the transit, clamped to [0, 1].
func Progress(orderDate, now time.Time) float64 {
	elapsed := now.Sub(orderDate)
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(TransitDuration)
	if p > 1 {
		return 1
	}
	return p
}

// StatusAt maps progress to a status. Thresholds are evaluated high to low
// and do not overlap.
func StatusAt(progress float64) Status {
	switch {
	case progress >= 1:
		return StatusArrived
	case progress >= 0.9:
		return StatusAlmostThere
	case progress >= 0.6:
		return StatusNearby
	case progress >= 0.3:
		return StatusOnTheWay
	default:
		return StatusPreparing
	}
}

// Interpolate places the rider on the straight line from one coordinate to
// the other at the given progress.
func Interpolate(from, to Coordinate, progress float64) Coordinate {
	return Coordinate{
		Lat: from.Lat + (to.Lat-from.Lat)*progress,
		Lng: from.Lng + (to.Lng-from.Lng)*progress,
	}
}

// RemainingMinutes counts whole minutes left of the transit, floored at 0.
func RemainingMinutes(orderDate, now time.Time) int {
	elapsed := now.Sub(orderDate).Minutes()
	remaining := int(math.Ceil(TransitDuration.Minutes() - elapsed))
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ETAText renders the countdown shown in the tracking widget.
func ETAText(orderDate, now time.Time) string {
	remaining := RemainingMinutes(orderDate, now)
	if remaining == 0 {
		return "Arriving now!"
	}
	return fmt.Sprintf("ETA: %d min", remaining)
}

// Active reports whether an order placed at orderDate still counts as an
// active delivery at now.
func Active(orderDate, now time.Time) bool {
	return now.Sub(orderDate) < ActiveWindow
}
