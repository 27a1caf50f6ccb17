package core

import "time"

// Rate limits for the generation cadence. The UI speed controls move within
// this range; anything outside it is clamped.
const (
	MinTPS = 1
	MaxTPS = 120
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate,
// independent of the frame rate of whatever loop drives it.
type FixedStep struct {
	tps         int
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

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// SetTPS changes the tick rate, clamped to [MinTPS, MaxTPS]. It is safe to
// call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps < MinTPS {
		tps = MinTPS
	}
	if tps > MaxTPS {
		tps = MaxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// Pause drops any accumulated time so that resuming does not burst through a
// backlog of ticks.
func (f *FixedStep) Pause() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
