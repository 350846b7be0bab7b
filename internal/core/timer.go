package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate. It is
// used by the headless runner; the GUI build relies on ebiten's own TPS
// control instead.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.PendingSteps(1) == 1
}

// PendingSteps drains the accumulator and reports how many ticks are owed
// since the last call, capped at max so a stalled process does not spiral.
func (f *FixedStep) PendingSteps(max int) int {
	if max <= 0 {
		max = 1
	}
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < max {
		f.accumulator -= f.step
		n++
	}
	if n == max {
		// Drop any remaining debt instead of bursting later.
		f.accumulator = 0
	}
	return n
}
