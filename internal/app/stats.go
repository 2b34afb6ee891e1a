package app

import "time"

// Stats tracks generation throughput for the HUD readout.
type Stats struct {
	Generation int
	Rate       float64 // generations per second, smoothed

	start    time.Time
	lastTick time.Time
}

// NewStats starts a fresh throughput tracker.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// Tick records one completed generation and folds its duration into the
// moving-average rate.
func (s *Stats) Tick() {
	now := time.Now()
	if !s.lastTick.IsZero() {
		if d := now.Sub(s.lastTick).Seconds(); d > 0 {
			inst := 1.0 / d
			if s.Rate == 0 {
				s.Rate = inst
			} else {
				s.Rate = s.Rate*0.9 + inst*0.1
			}
		}
	}
	s.lastTick = now
	s.Generation++
}

// Runtime returns the wall time elapsed since construction.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.start)
}
