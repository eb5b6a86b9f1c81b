// Package eta estimates delivery arrival windows.
package eta

import (
	"fmt"
	"math"
	"time"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

const (
	baseRiderDelayMinutes = 5.0
	perQueuedJobMinutes   = 4.0
	maxMinutesBeforeHours = 120
	expressTravelFactor   = 0.85
	expressPenaltyMinutes = 3.0
	sameDayTravelFactor   = 0.80
	sameDayPenaltyMinutes = 5.0
)

type peakWindow struct{ from, to int }

// Local hours [from, to) treated as rush hour.
var peakWindows = []peakWindow{{7, 9}, {16, 19}}

// Estimator turns a distance and zone ETA profile into an arrival window.
type Estimator struct {
	loc *time.Location
}

// NewEstimator creates an Estimator that evaluates rush hours in loc.
// A nil loc means UTC.
func NewEstimator(loc *time.Location) *Estimator {
	if loc == nil {
		loc = time.UTC
	}
	return &Estimator{loc: loc}
}

// Estimate returns the arrival window for a trip of distanceKm. A nil zone uses
// domain.DefaultETAProfile.
func (e *Estimator) Estimate(
	distanceKm float64,
	zone *domain.ZoneConfig,
	tier domain.DeliveryTier,
	requestedAt time.Time,
	riders domain.RiderAvailability,
) domain.ETAWindow {
	profile := domain.DefaultETAProfile()
	if zone != nil {
		profile = zone.ETA
	}

	speed := profile.TravelProfile.MinutesPerKm()
	traffic := e.TrafficMultiplier(requestedAt, profile.CongestionFactor)
	handling := (profile.PickupHandlingMinutes.Min + profile.PickupHandlingMinutes.Max) / 2

	travel := speed * distanceKm * traffic
	var penalty float64
	switch tier {
	case domain.TierExpress:
		travel *= expressTravelFactor
		penalty = expressPenaltyMinutes
	case domain.TierSameDay:
		travel *= sameDayTravelFactor
		penalty = sameDayPenaltyMinutes
	}

	raw := profile.BaseDispatchMinutes + handling + RiderDelayMinutes(riders) + penalty + travel
	buffer := raw * profile.OperationalBufferPercent

	lo := int(math.Floor(raw))
	hi := int(math.Ceil(raw + buffer))
	return domain.ETAWindow{Min: lo, Max: hi, Friendly: FormatWindow(lo, hi)}
}

// TrafficMultiplier is 1+congestion when at falls in a local rush hour, else 1.
func (e *Estimator) TrafficMultiplier(at time.Time, congestion float64) float64 {
	hour := at.In(e.loc).Hour()
	for _, w := range peakWindows {
		if hour >= w.from && hour < w.to {
			return 1 + congestion
		}
	}
	return 1.0
}

// RiderDelayMinutes is the dispatch delay implied by the rider backlog.
func RiderDelayMinutes(r domain.RiderAvailability) float64 {
	if r.ActiveRiders >= r.QueuedJobs {
		return baseRiderDelayMinutes
	}
	return baseRiderDelayMinutes + float64(r.QueuedJobs-r.ActiveRiders)*perQueuedJobMinutes
}

// FormatWindow renders a window in minutes, or in whole hours once the upper
// bound passes two hours.
func FormatWindow(lo, hi int) string {
	if hi <= maxMinutesBeforeHours {
		return fmt.Sprintf("%d-%d mins", lo, hi)
	}
	return fmt.Sprintf("%d-%d hours", lo/60, (hi+59)/60)
}
