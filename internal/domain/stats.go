package domain

import "time"

// TickStats holds statistics about one reconciliation cycle.
type TickStats struct {
	Tracked    int
	Detected   int
	Ended      int
	Continuing int
	Refreshed  int
	Errors     int
	Duration   time.Duration
}
