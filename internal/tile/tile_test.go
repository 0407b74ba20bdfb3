package tile

import "testing"

func TestDecode8x8SinglePlaneBit(t *testing.T) {
	// One 8x8 tile, 32 bytes. Set bit 0 (plane 0 of pixel x=0,y=0).
	raw := make([]byte, 32)
	raw[0] = 0x01

	sheet := Decode8x8(raw, 1)
	if got := sheet.Pixel(0, 0, 0); got != 0x1 {
		t.Fatalf("Pixel(0,0,0) = %#x, want 0x1", got)
	}
	if got := sheet.Pixel(0, 1, 0); got != 0 {
		t.Fatalf("Pixel(0,1,0) = %#x, want 0", got)
	}
}

func TestDecode8x8AllPlanesSetYieldsMaxIndex(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 0x0F // bits 0-3 all set: planes 0-3 of pixel (0,0)

	sheet := Decode8x8(raw, 1)
	if got := sheet.Pixel(0, 0, 0); got != 0x0F {
		t.Fatalf("Pixel(0,0,0) = %#x, want 0xf", got)
	}
}

func TestDecode8x8SecondColumn(t *testing.T) {
	raw := make([]byte, 32)
	// Column x=1 occupies bits 4-7 of byte 0.
	raw[0] = 0x05 << 4 // planes 0 and 2 set -> index 0b0101 = 5

	sheet := Decode8x8(raw, 1)
	if got := sheet.Pixel(0, 1, 0); got != 0x05 {
		t.Fatalf("Pixel(0,1,0) = %#x, want 0x5", got)
	}
}

func TestDecode8x8SecondRow(t *testing.T) {
	raw := make([]byte, 32)
	// Row y=1 starts at bit offset 32 (byte 4).
	raw[4] = 0x03

	sheet := Decode8x8(raw, 1)
	if got := sheet.Pixel(0, 0, 1); got != 0x03 {
		t.Fatalf("Pixel(0,0,1) = %#x, want 0x3", got)
	}
}

func TestDecode8x8TileCount(t *testing.T) {
	raw := make([]byte, 32*3)
	sheet := Decode8x8(raw, 3)
	if got := sheet.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
}

func TestDecode16x16SubTileQuadrants(t *testing.T) {
	raw := make([]byte, 128) // one 16x16 tile: 4 * 32 bytes

	raw[0] = 0x01          // top-left sub-tile, pixel (0,0)
	raw[32] = 0x02         // top-right sub-tile (bit offset 256 = byte 32), pixel (0,0) of that block -> (8,0)
	raw[64] = 0x03         // bottom-left sub-tile (bit offset 512 = byte 64), pixel (0,0) of that block -> (0,8)
	raw[96] = 0x04         // bottom-right sub-tile (bit offset 768 = byte 96), pixel (0,0) of that block -> (8,8)

	sheet := Decode16x16(raw, 1)
	if got := sheet.Pixel(0, 0, 0); got != 0x01 {
		t.Fatalf("top-left pixel = %#x, want 0x1", got)
	}
	if got := sheet.Pixel(0, 8, 0); got != 0x02 {
		t.Fatalf("top-right pixel = %#x, want 0x2", got)
	}
	if got := sheet.Pixel(0, 0, 8); got != 0x03 {
		t.Fatalf("bottom-left pixel = %#x, want 0x3", got)
	}
	if got := sheet.Pixel(0, 8, 8); got != 0x04 {
		t.Fatalf("bottom-right pixel = %#x, want 0x4", got)
	}
}

func TestDecodeIsPure(t *testing.T) {
	raw := make([]byte, 32*5)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	a := Decode8x8(raw, 5)
	b := Decode8x8(raw, 5)

	if a.Count() != b.Count() {
		t.Fatalf("Count() differs across decodes: %d vs %d", a.Count(), b.Count())
	}
	for tix := 0; tix < a.Count(); tix++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if a.Pixel(tix, x, y) != b.Pixel(tix, x, y) {
					t.Fatalf("decode not pure at tile %d (%d,%d)", tix, x, y)
				}
			}
		}
	}
}

func TestDecodeShortRawTreatedAsZero(t *testing.T) {
	raw := make([]byte, 4) // far shorter than one tile record
	sheet := Decode8x8(raw, 1)
	if got := sheet.Pixel(0, 7, 7); got != 0 {
		t.Fatalf("Pixel(0,7,7) = %#x, want 0 for truncated ROM data", got)
	}
}
