// Package romimage shapes already-loaded ROM byte slices into the regions
// the machine's address decoder expects. Loading ROM files from disk is a
// host concern (see cmd/rygar); this package only validates sizes and
// drives the one-shot tile decode.
package romimage

import (
	"fmt"

	"github.com/nullobject/rygar/internal/tile"
)

// Sizes of each raw ROM region, in bytes.
const (
	ProgramROMSize = 0xC000 // aggregated 0x0000..=0x7FFF and 0x8000..=0xBFFF
	BankedROMSize  = 0x8000 // 16 banks of 0x800 each, windowed at 0xF000..=0xF7FF

	CharTileCount   = 1024
	FgTileCount     = 1024
	BgTileCount     = 1024
	SpriteTileCount = 4096

	bytesPer8x8Tile   = 32  // 8*8 pixels * 4 bitplanes / 8 bits
	bytesPer16x16Tile = 128 // 16*16 pixels * 4 bitplanes / 8 bits
)

// Set holds the raw byte slices for every ROM region, as handed in by the
// host from compiled-in or loaded ROM images.
type Set struct {
	ProgramROM []byte
	BankedROM  []byte
	CharROM    []byte
	FgROM      []byte
	BgROM      []byte
	SpriteROM  []byte
}

// Decoded holds the one-shot deplanarized tile catalogs built from a Set.
type Decoded struct {
	Char   *tile.Sheet
	Fg     *tile.Sheet
	Bg     *tile.Sheet
	Sprite *tile.Sheet
}

// Decode validates every ROM region in s against the sizes Machine's
// address decoder and the tile layout expect, then deplanarizes the tile
// ROMs into indexed pixel sheets. It is called once at machine init; the
// result is immutable thereafter.
func (s *Set) Decode() Decoded {
	s.validate()
	return Decoded{
		Char:   tile.Decode8x8(s.CharROM, CharTileCount),
		Fg:     tile.Decode16x16(s.FgROM, FgTileCount),
		Bg:     tile.Decode16x16(s.BgROM, BgTileCount),
		Sprite: tile.Decode8x8(s.SpriteROM, SpriteTileCount),
	}
}

// validate panics if any ROM region's length doesn't exactly match what
// the address decoder or tile decoder expects. A short program/banked ROM
// would otherwise panic later and less clearly on an out-of-bounds slice
// index inside Machine.readMemory; a short tile ROM is caught safely by
// the tile decoder's own bounds check, but would silently decode garbage
// for any tile indices past where the ROM actually ends.
func (s *Set) validate() {
	check := func(name string, got, want int) {
		if got != want {
			panic(fmt.Sprintf("romimage: %s is %d bytes, want %d", name, got, want))
		}
	}
	check("ProgramROM", len(s.ProgramROM), ProgramROMSize)
	check("BankedROM", len(s.BankedROM), BankedROMSize)
	check("CharROM", len(s.CharROM), bytesPer8x8Tile*CharTileCount)
	check("FgROM", len(s.FgROM), bytesPer16x16Tile*FgTileCount)
	check("BgROM", len(s.BgROM), bytesPer16x16Tile*BgTileCount)
	check("SpriteROM", len(s.SpriteROM), bytesPer8x8Tile*SpriteTileCount)
}
