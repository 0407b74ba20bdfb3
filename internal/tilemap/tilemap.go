// Package tilemap implements the indexed-bitmap tile layer renderer shared
// by the char, fg, and bg layers. Each layer owns a dirty bitset over its
// cells and only re-rasterizes the cells a CPU write actually touched,
// rather than redrawing the whole map every frame.
package tilemap

import (
	"github.com/nullobject/rygar/internal/indexed"
	"github.com/nullobject/rygar/internal/tile"
)

// CellInfo is the code/color pair a layer's RAM-reading callback produces
// for one cell index.
type CellInfo struct {
	Code  int
	Color int
}

// InfoFunc reads the owning RAM region and returns the tile code and color
// for cell idx.
type InfoFunc func(idx int) CellInfo

// Tilemap renders a cols x rows grid of tiles from sheet, driven by info,
// into a scratch bitmap that is only refreshed for cells marked dirty
// since the previous draw.
type Tilemap struct {
	cols, rows int
	sheet      *tile.Sheet
	info       InfoFunc
	dirty      []bool
	scratch    *indexed.Bitmap // per-pixel value is an 8-bit in-layer palette offset
	scrollX    int
}

// New builds a Tilemap over a cols x rows grid of sheet's tiles. Every
// cell starts dirty so the first Draw renders the whole map.
func New(cols, rows int, sheet *tile.Sheet, info InfoFunc) *Tilemap {
	tm := &Tilemap{
		cols:    cols,
		rows:    rows,
		sheet:   sheet,
		info:    info,
		dirty:   make([]bool, cols*rows),
		scratch: indexed.NewBitmap(cols*sheet.Width, rows*sheet.Height),
	}
	for i := range tm.dirty {
		tm.dirty[i] = true
	}
	return tm
}

// Cells returns the tilemap's cell count (cols*rows), the modulus dirty
// indices wrap against.
func (tm *Tilemap) Cells() int {
	return len(tm.dirty)
}

// IsDirty reports whether cell idx (wrapped mod cell count) is currently
// marked dirty. Exposed for tests; Draw is the only production caller that
// needs dirty state.
func (tm *Tilemap) IsDirty(idx int) bool {
	return tm.dirty[idx%len(tm.dirty)]
}

// MarkDirty flags cell idx (wrapped mod cell count) for re-rasterization on
// the next Draw. Marking an already-dirty cell is a no-op, since dirty is a
// set rather than a counter.
func (tm *Tilemap) MarkDirty(idx int) {
	tm.dirty[idx%len(tm.dirty)] = true
}

// SetScrollX stores the effective horizontal scroll, wrapped to 16 bits.
func (tm *Tilemap) SetScrollX(v int) {
	tm.scrollX = v & 0xFFFF
}

func (tm *Tilemap) refresh() {
	tw, th := tm.sheet.Width, tm.sheet.Height
	for idx, isDirty := range tm.dirty {
		if !isDirty {
			continue
		}
		cx := idx % tm.cols
		cy := idx / tm.cols
		cell := tm.info(idx)
		for y := 0; y < th; y++ {
			for x := 0; x < tw; x++ {
				pixel := tm.sheet.Pixel(cell.Code%tm.sheet.Count(), x, y)
				offset := int(pixel) | (cell.Color << 4)
				tm.scratch.Set(cx*tw+x, cy*th+y, uint16(offset))
			}
		}
		tm.dirty[idx] = false
	}
}

// Draw refreshes any dirty cells, then composites the map into dst with
// horizontal scroll wrap, writing palette_base | per-pixel offset and
// layerTag into every covered destination pixel. Tilemap draws are
// unconditional: unlike the sprite engine there is no transparency test or
// tag-priority check, since layering between bg/fg/char is entirely a
// function of draw order.
func (tm *Tilemap) Draw(dst *indexed.Bitmap, paletteBase, layerTag int) {
	tm.refresh()

	mapW := tm.scratch.Width
	mapH := tm.scratch.Height
	for y := 0; y < dst.Height; y++ {
		srcY := y % mapH
		for x := 0; x < dst.Width; x++ {
			srcX := ((x+tm.scrollX)%mapW + mapW) % mapW
			offset := int(tm.scratch.At(srcX, srcY))
			dst.Set(x, y, indexed.Pack(paletteBase|offset, layerTag))
		}
	}
}
