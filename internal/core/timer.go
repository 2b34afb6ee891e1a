// Package core holds host-side plumbing shared by the front ends.
package core

import "time"

// maxCatchUp bounds how many generations a single slow frame may produce.
const maxCatchUp = 4

// FixedStep converts real elapsed time into a steady number of simulation
// ticks per second, independent of the host frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 10
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Steps reports how many ticks the simulation should advance for this
// frame. The count is capped; after a long stall the backlog is dropped
// rather than replayed.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	steps := 0
	for f.accumulator >= f.step && steps < maxCatchUp {
		f.accumulator -= f.step
		steps++
	}
	if steps == maxCatchUp {
		f.accumulator = 0
	}
	return steps
}
