package cpu

import (
	z80chip "github.com/user-none/go-chip-z80"
)

// externalCore adapts github.com/user-none/go-chip-z80's memory/port
// accessor interfaces to the tick-callback Core contract the rest of this
// module programs against. This is the one file in the module that knows
// about the external core's concrete API; everything else depends only on
// the Core interface in pins.go.
//
// Every bus cycle the chip performs funnels through the accessor methods
// below, which translate it into a Bus pin word and hand it to the
// registered TickFunc. MREQ/RD/WR are synthesized for memory accesses,
// IORQ/RD/WR for port accesses. The board runs Z80 interrupt mode 1, so
// M1 is only ever asserted here on the synthesized acknowledge cycle in
// intAck, not on ordinary opcode fetches — the chip's own decode loop
// does not expose fetch-vs-operand reads through this accessor interface.
type externalCore struct {
	chip   *z80chip.CPU
	tick   TickFunc
	irqSet bool
}

// NewExternalCore builds a Core backed by the real Z80 chip emulation.
// Host code (cmd/rygar) calls this to wire a live CPU; tests use a fake
// Core (see fake.go) to drive internal/machine directly without
// depending on Z80 instruction semantics at all.
func NewExternalCore(tick TickFunc) Core {
	c := &externalCore{tick: tick}
	c.chip = z80chip.NewCPU(c, c)
	return c
}

func (c *externalCore) Exec(budgetTicks int) int {
	executed := 0
	for executed < budgetTicks {
		executed += c.chip.Step()
	}
	return executed
}

func (c *externalCore) Reset() {
	c.irqSet = false
	c.chip.SetINT(false)
	c.chip.Reset()
}

// noteINT forwards the INT pin carried on out to the chip's interrupt
// line and drives the interrupt-acknowledge bus cycle on the rising
// edge, so the vblank interrupt machine.Tick asserts every frame
// actually reaches the chip instead of being dropped by this adapter.
func (c *externalCore) noteINT(out Bus) {
	asserted := out.Flags&INT != 0
	if asserted && !c.irqSet {
		c.intAck()
	}
	c.irqSet = asserted
	c.chip.SetINT(asserted)
}

// intAck performs the mode-1 interrupt-acknowledge cycle: IORQ and M1
// both asserted, data bus ignored (mode 1 always vectors to 0x0038).
// This is the one cycle this adapter drives outside of chip.Step,
// letting machine.Tick's own IORQ&M1 acknowledge handling (which clears
// INT) run the same way against the real core as it does against the
// fake core in tests.
func (c *externalCore) intAck() {
	c.tick(1, Bus{Flags: IORQ | M1})
}

// ReadByte implements the chip's memory accessor interface.
func (c *externalCore) ReadByte(addr uint16) uint8 {
	out := c.tick(1, Bus{Address: addr, Flags: MREQ | RD})
	c.noteINT(out)
	return out.Data
}

// WriteByte implements the chip's memory accessor interface.
func (c *externalCore) WriteByte(addr uint16, data uint8) {
	out := c.tick(1, Bus{Address: addr, Data: data, Flags: MREQ | WR})
	c.noteINT(out)
}

// ReadPort implements the chip's I/O accessor interface.
func (c *externalCore) ReadPort(addr uint16) uint8 {
	out := c.tick(1, Bus{Address: addr, Flags: IORQ | RD})
	c.noteINT(out)
	return out.Data
}

// WritePort implements the chip's I/O accessor interface.
func (c *externalCore) WritePort(addr uint16, data uint8) {
	out := c.tick(1, Bus{Address: addr, Data: data, Flags: IORQ | WR})
	c.noteINT(out)
}
