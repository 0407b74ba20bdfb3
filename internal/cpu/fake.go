package cpu

// FakeCore is a minimal, deterministic stand-in for a real Z80 core, used
// by tests that need to exercise Core wiring (internal/emulator's frame
// loop, internal/clock's budget accounting) without depending on Z80
// instruction semantics, which this module does not implement. Each Exec
// call performs one bus cycle per tick of the requested budget, each an
// opcode-fetch read from an incrementing program counter.
type FakeCore struct {
	tick TickFunc
	pc   uint16
}

// NewFakeCore returns a Core that drives tick in a simple, predictable
// pattern: one M1/MREQ/RD opcode-fetch cycle per tick, reading sequential
// addresses starting at 0.
func NewFakeCore(tick TickFunc) *FakeCore {
	return &FakeCore{tick: tick}
}

func (f *FakeCore) Exec(budgetTicks int) int {
	executed := 0
	for executed < budgetTicks {
		f.tick(1, Bus{Address: f.pc, Flags: MREQ | RD | M1})
		f.pc++
		executed++
	}
	return executed
}

func (f *FakeCore) Reset() {
	f.pc = 0
}
