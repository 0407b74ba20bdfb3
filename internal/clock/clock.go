// Package clock converts host frame deltas into CPU tick budgets and
// drives a cpu.Core through them, carrying over whatever a burst
// overshoots into the next frame's budget.
package clock

import "github.com/nullobject/rygar/internal/cpu"

// TickHz is the board's CPU clock rate the VSYNC/VBLANK tick constants in
// internal/machine are derived from.
const TickHz = 4_000_000

// Clock accumulates the overshoot between the tick budget requested for a
// frame and the ticks a CPU core actually executed, since instructions are
// not preemptible mid-execution.
type Clock struct {
	overshoot int
}

// Advance runs core for approximately dt seconds' worth of ticks: it calls
// core.Exec repeatedly with the remaining budget until at least that many
// ticks have executed, then folds any excess into the next call's budget.
// A zero or negative dt executes zero ticks.
func (c *Clock) Advance(core cpu.Core, dt float64) int {
	budget := int(dt*TickHz) - c.overshoot
	if budget < 0 {
		budget = 0
	}

	executed := 0
	for executed < budget {
		executed += core.Exec(budget - executed)
	}

	c.overshoot = executed - budget
	return executed
}

// Reset clears accumulated overshoot, e.g. after a machine Reset.
func (c *Clock) Reset() {
	c.overshoot = 0
}
