// Package sprite implements the priority-ordered sprite rasterizer. Sprite
// RAM is interpreted as a fixed array of fixed-size descriptor records;
// this module's own record layout is used (the spec leaves the exact bit
// packing to the original sprite-draw routine, out of scope here, and
// only commits to the descriptor's logical fields), documented alongside
// the code that parses it.
package sprite

import (
	"github.com/nullobject/rygar/internal/indexed"
	"github.com/nullobject/rygar/internal/tile"
)

// recordSize is the byte width of one sprite-RAM descriptor record.
const recordSize = 8

// Descriptor is one parsed sprite-RAM entry.
type Descriptor struct {
	Code   int
	Color  int
	X, Y   int
	Size   int // 8, 16, 32, or 64
	Enable bool
	FlipX  bool
	FlipY  bool
	Tag    int // 0-3, layer priority
}

func sizeFromSelect(sel int) int {
	switch sel {
	case 0:
		return 8
	case 1:
		return 16
	case 2:
		return 32
	default:
		return 64
	}
}

// Parse decodes every whole descriptor record out of raw sprite RAM, in
// memory order. Byte layout per record:
//
//	byte 0: code bits 0-7
//	byte 1: bits 0-3 code bits 8-11, bit 4 flip-x, bit 5 flip-y, bit 6 enable
//	byte 2: bits 0-3 color, bits 4-5 layer tag, bits 6-7 size select
//	byte 3: X bits 0-7
//	byte 4: bit 0 X bit 8, bit 1 Y bit 8
//	byte 5: Y bits 0-7
func Parse(raw []byte) []Descriptor {
	n := len(raw) / recordSize
	out := make([]Descriptor, n)
	for i := 0; i < n; i++ {
		r := raw[i*recordSize : i*recordSize+recordSize]
		out[i] = Descriptor{
			Code:   int(r[0]) | int(r[1]&0x0F)<<8,
			FlipX:  r[1]&0x10 != 0,
			FlipY:  r[1]&0x20 != 0,
			Enable: r[1]&0x40 != 0,
			Color:  int(r[2] & 0x0F),
			Tag:    int(r[2]>>4) & 0x03,
			Size:   sizeFromSelect(int(r[2]>>6) & 0x03),
			X:      int(r[3]) | int(r[4]&0x01)<<8,
			Y:      int(r[5]) | int(r[4]&0x02)<<7,
		}
	}
	return out
}

// Draw rasterizes every enabled descriptor into dst in memory order.
// Transparency is the standard "zero lower nibble" test. Priority between
// overlapping writes — sprite against sprite, and sprite against the
// tilemap layers already composited into dst — is resolved by layer tag:
// lower numeric tags are the more frontmost layer (matching the
// compositor's own bg=3/fg=2/char=1/sprite=0 convention), so a write is
// skipped wherever the destination pixel already carries a strictly lower
// tag than the sprite being drawn.
func Draw(dst *indexed.Bitmap, descriptors []Descriptor, sheet *tile.Sheet, paletteBase int) {
	for _, d := range descriptors {
		if !d.Enable {
			continue
		}
		drawOne(dst, d, sheet, paletteBase)
	}
}

func drawOne(dst *indexed.Bitmap, d Descriptor, sheet *tile.Sheet, paletteBase int) {
	tw, th := sheet.Width, sheet.Height
	n := d.Size / tw
	if n < 1 {
		n = 1
	}
	size := n * tw

	for by := 0; by < n; by++ {
		for bx := 0; bx < n; bx++ {
			tileIdx := (d.Code + by*n + bx) % sheet.Count()
			for y := 0; y < th; y++ {
				for x := 0; x < tw; x++ {
					pixel := sheet.Pixel(tileIdx, x, y)
					if pixel&0x0F == 0 {
						continue
					}

					px := bx*tw + x
					py := by*th + y
					if d.FlipX {
						px = size - 1 - px
					}
					if d.FlipY {
						py = size - 1 - py
					}

					dx := d.X + px
					dy := d.Y + py
					if dx < 0 || dx >= dst.Width || dy < 0 || dy >= dst.Height {
						continue
					}

					existing := dst.At(dx, dy)
					if d.Tag > indexed.LayerTag(existing) {
						continue
					}

					offset := int(pixel) | (d.Color << 4)
					dst.Set(dx, dy, indexed.Pack(paletteBase|offset, d.Tag))
				}
			}
		}
	}
}
