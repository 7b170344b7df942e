package domain

import "time"

// Boundary is the oldest still-active locally known ad for a source. It is
// derived fresh each cycle and bounds the pagination walk.
type Boundary struct {
	AdID       string // remote library id
	Date       time.Time
	KnownCount int
}

// CycleStats summarizes one tracking cycle for a single source.
type CycleStats struct {
	SourceID        string
	NewAds          int
	UnchangedActive int
	BecameInactive  int
	Reactivated     int
	TotalAds        int
	Errors          int
	Duration        time.Duration
}

// ReconcileStats summarizes one status reconciliation pass.
type ReconcileStats struct {
	UnchangedActive int
	BecameInactive  int
	Reactivated     int

	// BoundaryInvalidated is set when the ad currently serving as the sync
	// boundary was marked inactive; the next cycle re-derives the boundary
	// from scratch.
	BoundaryInvalidated bool
}
