// Package emulator wires the CPU core, the machine's bus/video state, the
// clock, and the frame compositor together behind a single RunFrame call.
package emulator

import (
	"image"

	"github.com/nullobject/rygar/internal/clock"
	"github.com/nullobject/rygar/internal/cpu"
	"github.com/nullobject/rygar/internal/debug"
	"github.com/nullobject/rygar/internal/machine"
	"github.com/nullobject/rygar/internal/romimage"
	"github.com/nullobject/rygar/internal/video"
)

// Emulator owns one machine, its driving CPU core, and the clock/compositor
// that turn host frame deltas into rendered frames.
type Emulator struct {
	Machine *machine.Machine
	Core    cpu.Core
	Logger  *debug.Logger

	clock      clock.Clock
	compositor *video.Compositor
}

// New builds an Emulator over roms, driving it with a real Z80 core.
func New(roms *romimage.Set, logger *debug.Logger) *Emulator {
	return newEmulator(roms, logger, cpu.NewExternalCore)
}

// NewWithCore builds an Emulator over roms, driving it with core instead of
// a real Z80 chip. Intended for tests that exercise RunFrame without
// depending on Z80 instruction semantics.
func NewWithCore(roms *romimage.Set, logger *debug.Logger, newCore func(cpu.TickFunc) cpu.Core) *Emulator {
	return newEmulator(roms, logger, newCore)
}

func newEmulator(roms *romimage.Set, logger *debug.Logger, newCore func(cpu.TickFunc) cpu.Core) *Emulator {
	m := machine.New(roms)
	e := &Emulator{
		Machine:    m,
		Logger:     logger,
		Core:       newCore(m.Tick),
		compositor: video.NewCompositor(),
	}
	if logger != nil {
		logger.LogHost(debug.LogLevelInfo, "cpu core wired", nil)
	}
	return e
}

// Reset restores the machine, clock, and CPU core to power-on state.
func (e *Emulator) Reset() {
	e.Machine.Reset()
	e.clock.Reset()
	e.Core.Reset()
	if e.Logger != nil {
		e.Logger.LogSystem(debug.LogLevelInfo, "machine reset", nil)
	}
}

// RunFrame advances the CPU by dt seconds' worth of ticks, then renders
// and returns one frame. The returned image is owned by the Emulator and
// reused across calls.
func (e *Emulator) RunFrame(dt float64) *image.RGBA {
	e.clock.Advance(e.Core, dt)
	return e.compositor.Render(e.Machine.Layers(), &e.Machine.Palette)
}
