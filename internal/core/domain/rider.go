package domain

// RiderAvailability is a point-in-time count of riders versus queued jobs.
type RiderAvailability struct {
	ActiveRiders int `json:"active_riders"`
	QueuedJobs   int `json:"queued_jobs"`
}

// DefaultRiderAvailability is the snapshot used when no live figure is available.
// The numbers are a placeholder until a rider-tracking feed exists.
func DefaultRiderAvailability() RiderAvailability {
	return RiderAvailability{ActiveRiders: 5, QueuedJobs: 3}
}
