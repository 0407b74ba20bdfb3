package clock

import "testing"

type steppingCore struct {
	perCall int
	total   int
}

func (s *steppingCore) Exec(budget int) int {
	// Like a real core, every call runs a whole step of perCall ticks, even
	// when that overshoots budget.
	n := s.perCall
	if n == 0 {
		n = budget // no step size: finish the whole budget in one call
	}
	s.total += n
	return n
}

func (s *steppingCore) Reset() { s.total = 0 }

func TestAdvanceRunsUntilBudgetMet(t *testing.T) {
	core := &steppingCore{perCall: 1000}
	var c Clock

	executed := c.Advance(core, 0.001) // 1ms at 4MHz = 4000 ticks
	if executed < 4000 {
		t.Fatalf("executed = %d, want at least 4000", executed)
	}
}

func TestAdvanceCarriesOvershootToNextFrame(t *testing.T) {
	core := &steppingCore{perCall: 3000} // always overshoots a 1000-tick budget
	var c Clock

	first := c.Advance(core, 0.00025) // 0.25ms -> 1000 ticks requested
	if first != 3000 {
		t.Fatalf("first Advance executed = %d, want 3000 (one whole Exec step)", first)
	}

	second := c.Advance(core, 0.0005) // 0.5ms -> 2000 ticks requested
	if second != 0 {
		t.Fatalf("second Advance executed = %d, want 0 (fully covered by prior overshoot)", second)
	}
}

func TestAdvanceZeroDeltaExecutesNothing(t *testing.T) {
	core := &steppingCore{perCall: 100}
	var c Clock

	executed := c.Advance(core, 0)
	if executed != 0 {
		t.Fatalf("executed = %d, want 0 for zero delta", executed)
	}
}

func TestResetClearsOvershoot(t *testing.T) {
	core := &steppingCore{perCall: 3000}
	var c Clock
	c.Advance(core, 0.00025) // 1000 ticks requested, 2000 overshoot
	c.Reset()

	executed := c.Advance(core, 0.0005)
	if executed == 0 {
		t.Fatalf("executed = 0 after Reset, want overshoot to have been cleared")
	}
}
