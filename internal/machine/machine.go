// Package machine implements the fused CPU bus / video-generation core: the
// memory-mapped address decoder, the vsync/vblank interrupt timer, and the
// RAM/ROM/tilemap/palette state they all share. A Machine is driven by
// repeated calls to Tick from a cpu.Core; between CPU bursts, the host
// reads input through Set* methods and renders through Layers/Palette.
package machine

import (
	"github.com/nullobject/rygar/internal/cpu"
	"github.com/nullobject/rygar/internal/palette"
	"github.com/nullobject/rygar/internal/romimage"
	"github.com/nullobject/rygar/internal/sprite"
	"github.com/nullobject/rygar/internal/tile"
	"github.com/nullobject/rygar/internal/tilemap"
	"github.com/nullobject/rygar/internal/video"
)

// Address-space region layout. Every CPU-visible byte from 0x0000 to
// 0xEFFF is accounted for by exactly one of these regions; 0xF000 and up
// holds the banked ROM window, scroll/bank registers, and input ports.
const (
	programROMBase = 0x0000
	programROMSize = 0xC000

	workRAMBase = 0xC000
	workRAMSize = 0x1000

	charRAMBase  = 0xD000
	charRAMSize  = 0x800 // two 0x400 halves: low code byte, high code/color byte
	charRAMHalf  = 0x400
	charRAMMask  = 0x3FF

	fgRAMBase = 0xD800
	fgRAMSize = 0x400 // two 0x200 halves
	fgRAMHalf = 0x200
	fgRAMMask = 0x1FF

	bgRAMBase = 0xDC00
	bgRAMSize = 0x400
	bgRAMHalf = 0x200
	bgRAMMask = 0x1FF

	spriteRAMBase = 0xE000
	spriteRAMSize = 0x800

	paletteRAMBase = 0xE800
	paletteRAMSize = 0x800

	bankedROMBase   = 0xF000
	bankedROMWindow = 0x800
	bankCount       = 16

	fgScrollBase = 0xF800
	bgScrollBase = 0xF803
	bankSelectAddr = 0xF808

	joystickAddr = 0xF800
	buttonsAddr  = 0xF801
	sysAddr      = 0xF804
	dip2hAddr    = 0xF807
	dip2hValue   = 0x08

	scrollXOffset = 48

	// 4 MHz clock, 60 Hz frame, 525-line field of which 42 lines are VBLANK.
	vsyncPeriod    = 66667
	vblankDuration = 5333
)

// Char/fg/bg tilemap geometries. RAM-half size fixes the cell count
// (char: 0x400 bytes/half -> 1024 cells; fg/bg: 0x200 bytes/half -> 512
// cells), and the column/row split below is this module's own choice: it
// is unconstrained by the spec beyond that product.
const (
	charCols, charRows = 32, 32
	fgCols, fgRows     = 32, 16
	bgCols, bgRows     = 32, 16
)

// Machine holds all process-wide emulator state: RAM, ROM, the decoded
// tile catalogs, the palette cache, and the three tilemap engines.
type Machine struct {
	workRAM    [workRAMSize]byte
	charRAM    [charRAMSize]byte
	fgRAM      [fgRAMSize]byte
	bgRAM      [bgRAMSize]byte
	spriteRAM  [spriteRAMSize]byte
	paletteRAM [paletteRAMSize]byte

	programROM []byte
	bankedROM  []byte
	currentBank int

	decoded romimage.Decoded
	Palette palette.Cache

	fgScroll  [3]uint8
	bgScroll  [3]uint8

	joystick uint8
	buttons  uint8
	sys      uint8

	vsyncCount  int
	vblankCount int

	charTilemap *tilemap.Tilemap
	fgTilemap   *tilemap.Tilemap
	bgTilemap   *tilemap.Tilemap
}

// New builds a Machine over roms, which must already satisfy
// romimage.Set's size expectations. Tile ROMs are decoded once here.
func New(roms *romimage.Set) *Machine {
	m := &Machine{
		programROM: roms.ProgramROM,
		bankedROM:  roms.BankedROM,
	}
	m.decoded = roms.Decode()
	m.charTilemap = tilemap.New(charCols, charRows, m.decoded.Char, m.charCellInfo)
	m.fgTilemap = tilemap.New(fgCols, fgRows, m.decoded.Fg, m.fgCellInfo)
	m.bgTilemap = tilemap.New(bgCols, bgRows, m.decoded.Bg, m.bgCellInfo)
	m.Reset()
	return m
}

// Reset restores power-on state: RAM, scroll latches, the bank register,
// input latches, and the vsync/vblank counters (reloaded to a full period
// so the first frame after reset boots into a known phase, rather than
// zero which would immediately assert INT).
func (m *Machine) Reset() {
	m.workRAM = [workRAMSize]byte{}
	m.charRAM = [charRAMSize]byte{}
	m.fgRAM = [fgRAMSize]byte{}
	m.bgRAM = [bgRAMSize]byte{}
	m.spriteRAM = [spriteRAMSize]byte{}
	m.paletteRAM = [paletteRAMSize]byte{}
	m.Palette.Reset()

	m.fgScroll = [3]uint8{}
	m.bgScroll = [3]uint8{}
	m.currentBank = 0
	m.joystick = 0
	m.buttons = 0
	m.sys = 0

	m.vsyncCount = vsyncPeriod
	m.vblankCount = 0

	for i := 0; i < m.charTilemap.Cells(); i++ {
		m.charTilemap.MarkDirty(i)
	}
	for i := 0; i < m.fgTilemap.Cells(); i++ {
		m.fgTilemap.MarkDirty(i)
	}
	for i := 0; i < m.bgTilemap.Cells(); i++ {
		m.bgTilemap.MarkDirty(i)
	}
	m.fgTilemap.SetScrollX(scrollXOffset)
	m.bgTilemap.SetScrollX(scrollXOffset)
}

// Tick is the cpu.TickFunc driving this Machine. It advances vsync/vblank
// timing, routes the memory or I/O access the pin word describes, and
// clears INT on interrupt acknowledge.
func (m *Machine) Tick(numTicks int, pins cpu.Bus) cpu.Bus {
	m.advanceTiming(numTicks, &pins)

	switch {
	case pins.Flags&cpu.MREQ != 0 && pins.Flags&cpu.WR != 0:
		m.writeMemory(pins.Address, pins.Data)
	case pins.Flags&cpu.MREQ != 0 && pins.Flags&cpu.RD != 0:
		pins.Data = m.readMemory(pins.Address)
	}

	if pins.Flags&cpu.IORQ != 0 && pins.Flags&cpu.M1 != 0 {
		pins.Flags &^= cpu.INT
	}

	return pins
}

func (m *Machine) advanceTiming(numTicks int, pins *cpu.Bus) {
	m.vsyncCount -= numTicks
	if m.vsyncCount <= 0 {
		m.vsyncCount += vsyncPeriod
		m.vblankCount = vblankDuration
	}

	if m.vblankCount > 0 {
		m.vblankCount--
		pins.Flags |= cpu.INT
	} else {
		m.vblankCount = 0
	}
}

func (m *Machine) writeMemory(addr uint16, data uint8) {
	switch {
	case inRange(addr, workRAMBase, workRAMSize):
		m.workRAM[addr-workRAMBase] = data

	case inRange(addr, charRAMBase, charRAMSize):
		off := addr - charRAMBase
		m.charRAM[off] = data
		m.charTilemap.MarkDirty(int(off) & charRAMMask)

	case inRange(addr, fgRAMBase, fgRAMSize):
		off := addr - fgRAMBase
		m.fgRAM[off] = data
		m.fgTilemap.MarkDirty(int(off) & fgRAMMask)

	case inRange(addr, bgRAMBase, bgRAMSize):
		off := addr - bgRAMBase
		m.bgRAM[off] = data
		m.bgTilemap.MarkDirty(int(off) & bgRAMMask)

	case inRange(addr, spriteRAMBase, spriteRAMSize):
		m.spriteRAM[addr-spriteRAMBase] = data

	case inRange(addr, paletteRAMBase, paletteRAMSize):
		off := addr - paletteRAMBase
		m.paletteRAM[off] = data
		m.Palette.Write(int(off), data)

	case addr >= fgScrollBase && addr < fgScrollBase+3:
		m.fgScroll[addr-fgScrollBase] = data
		m.fgTilemap.SetScrollX(m.effectiveScrollX(m.fgScroll))

	case addr >= bgScrollBase && addr < bgScrollBase+3:
		m.bgScroll[addr-bgScrollBase] = data
		m.bgTilemap.SetScrollX(m.effectiveScrollX(m.bgScroll))

	case addr == bankSelectAddr:
		m.currentBank = int(data>>3) & 0x0F

	default:
		// Unmapped write: ignored, matching the original's floating bus.
	}
}

func (m *Machine) effectiveScrollX(latch [3]uint8) int {
	return (int(latch[1])<<8 | int(latch[0])) + scrollXOffset
}

func (m *Machine) readMemory(addr uint16) uint8 {
	switch {
	case inRange(addr, programROMBase, programROMSize):
		return m.programROM[addr-programROMBase]

	case inRange(addr, workRAMBase, workRAMSize):
		return m.workRAM[addr-workRAMBase]

	case inRange(addr, charRAMBase, charRAMSize):
		return m.charRAM[addr-charRAMBase]

	case inRange(addr, fgRAMBase, fgRAMSize):
		return m.fgRAM[addr-fgRAMBase]

	case inRange(addr, bgRAMBase, bgRAMSize):
		return m.bgRAM[addr-bgRAMBase]

	case inRange(addr, spriteRAMBase, spriteRAMSize):
		return m.spriteRAM[addr-spriteRAMBase]

	case inRange(addr, paletteRAMBase, paletteRAMSize):
		return m.paletteRAM[addr-paletteRAMBase]

	case inRange(addr, bankedROMBase, bankedROMWindow):
		off := int(addr-bankedROMBase) + m.currentBank*bankedROMWindow
		return m.bankedROM[off]

	case addr == joystickAddr:
		return m.joystick
	case addr == buttonsAddr:
		return m.buttons
	case addr == sysAddr:
		return m.sys
	case addr == dip2hAddr:
		return dip2hValue

	default:
		return 0x00
	}
}

func inRange(addr uint16, base uint16, size int) bool {
	return addr >= base && int(addr-base) < size
}

func (m *Machine) charCellInfo(idx int) tilemap.CellInfo {
	lo := m.charRAM[idx]
	hi := m.charRAM[idx+charRAMHalf]
	return tilemap.CellInfo{
		Code:  (int(hi&0x03) << 8) | int(lo),
		Color: int(hi >> 4),
	}
}

func (m *Machine) fgCellInfo(idx int) tilemap.CellInfo {
	lo := m.fgRAM[idx]
	hi := m.fgRAM[idx+fgRAMHalf]
	return tilemap.CellInfo{
		Code:  (int(hi&0x07) << 8) | int(lo),
		Color: int(hi >> 4),
	}
}

func (m *Machine) bgCellInfo(idx int) tilemap.CellInfo {
	lo := m.bgRAM[idx]
	hi := m.bgRAM[idx+bgRAMHalf]
	return tilemap.CellInfo{
		Code:  (int(hi&0x07) << 8) | int(lo),
		Color: int(hi >> 4),
	}
}

// SetJoystick sets or clears bit in the joystick input latch.
func (m *Machine) SetJoystick(bit uint, down bool) {
	m.joystick = setBit(m.joystick, bit, down)
}

// SetButtons sets or clears bit in the buttons input latch.
func (m *Machine) SetButtons(bit uint, down bool) {
	m.buttons = setBit(m.buttons, bit, down)
}

// SetSys sets or clears bit in the coin/start input latch.
func (m *Machine) SetSys(bit uint, down bool) {
	m.sys = setBit(m.sys, bit, down)
}

func setBit(v uint8, bit uint, set bool) uint8 {
	if set {
		return v | (1 << bit)
	}
	return v &^ (1 << bit)
}

// Joystick returns the current joystick input latch.
func (m *Machine) Joystick() uint8 {
	return m.joystick
}

// Buttons returns the current attack/jump input latch.
func (m *Machine) Buttons() uint8 {
	return m.buttons
}

// Sys returns the current coin/start input latch.
func (m *Machine) Sys() uint8 {
	return m.sys
}

// CurrentBank returns the active banked-ROM window, for tests and debug
// surfaces.
func (m *Machine) CurrentBank() int {
	return m.currentBank
}

// VBlankActive reports whether the vblank/INT window is currently open.
func (m *Machine) VBlankActive() bool {
	return m.vblankCount > 0
}

// Layers snapshots the render-time view of tilemap/sprite state the video
// compositor needs for one frame.
func (m *Machine) Layers() video.Layers {
	return video.Layers{
		Bg:          m.bgTilemap,
		Fg:          m.fgTilemap,
		Char:        m.charTilemap,
		Sprites:     sprite.Parse(m.spriteRAM[:]),
		SpriteSheet: m.decoded.Sprite,
	}
}

// TileSheet exposes a decoded tile catalog by name, for tests and tools
// that want to inspect decoded ROM contents directly.
func (m *Machine) TileSheet(name string) *tile.Sheet {
	switch name {
	case "char":
		return m.decoded.Char
	case "fg":
		return m.decoded.Fg
	case "bg":
		return m.decoded.Bg
	case "sprite":
		return m.decoded.Sprite
	default:
		return nil
	}
}
