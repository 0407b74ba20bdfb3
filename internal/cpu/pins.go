// Package cpu defines the contract this module expects from the Z80 CPU
// core collaborator (§6 of the design). The core itself — instruction
// decoding, register file, flags — is explicitly out of scope: it is
// consumed as a black-box ticking engine driven through a per-tick
// callback that carries the CPU's pin state in and out.
package cpu

// Pins is the set of control-line flags carried on the bus alongside
// address and data for a single callback invocation. The encoding mirrors
// the Z80's own pin names so the address decoder in internal/machine can
// test them directly (pins&MREQ != 0, etc).
type Pins uint16

const (
	MREQ Pins = 1 << iota // memory request
	IORQ                  // I/O request
	RD                    // read strobe
	WR                    // write strobe
	M1                    // opcode fetch cycle
	INT                   // maskable interrupt request (level-sensitive)
)

// Bus is the pin word passed into and returned from the tick callback.
// Address and Data are the address/data bus contents for the cycle being
// serviced; Flags carries the control lines above. The callback receives a
// Bus by value and returns a (possibly modified) Bus by value — there is no
// reference into CPU-core internals, which is how the cycle between the
// core and the bus callback is broken (see design notes in spec.md §9).
type Bus struct {
	Address uint16
	Data    uint8
	Flags   Pins
}

// TickFunc is invoked once per bus cycle the CPU core performs. numTicks is
// the number of clock ticks consumed by the cycle that produced this pin
// state, and is used to drive vsync/vblank timing (§4.7) independent of
// instruction boundaries.
type TickFunc func(numTicks int, pins Bus) Bus

// Core is the external CPU engine contract. A concrete Core is supplied by
// a real Z80 implementation (see core_external.go for the adapter to
// github.com/user-none/go-chip-z80); this module never implements Z80
// instruction decoding itself.
type Core interface {
	// Exec runs the core until at least budgetTicks clock ticks have been
	// consumed, calling the registered TickFunc once per bus cycle along
	// the way, and returns the number of ticks actually executed (which
	// may overshoot budgetTicks, since instructions are not preemptible
	// mid-execution).
	Exec(budgetTicks int) int

	// Reset restores the core to its power-on state (PC = 0, etc).
	Reset()
}
