package palette

import "testing"

func TestWriteBlueNibbleReplication(t *testing.T) {
	var c Cache
	c.Write(0x000, 0x05)

	got := c.Entry(0)
	want := uint32(0xFF550000)
	if got != want {
		t.Fatalf("Entry(0) = %#08x, want %#08x", got, want)
	}
}

func TestWriteRedGreenNibbleReplication(t *testing.T) {
	var c Cache
	c.Write(0x000, 0x05)
	c.Write(0x001, 0xAB)

	got := c.Entry(0)
	want := uint32(0xAA)<<0 | uint32(0xBB)<<8 | uint32(0x55)<<16 | uint32(0xFF)<<24
	if got != want {
		t.Fatalf("Entry(0) = %#08x, want %#08x", got, want)
	}

	r := uint8(got)
	g := uint8(got >> 8)
	b := uint8(got >> 16)
	a := uint8(got >> 24)
	if r != 0xAA || g != 0xBB || b != 0x55 || a != 0xFF {
		t.Fatalf("Entry(0) channels = r=%#x g=%#x b=%#x a=%#x, want r=0xaa g=0xbb b=0x55 a=0xff", r, g, b, a)
	}
}

func TestWriteLeavesOtherChannelUntouched(t *testing.T) {
	var c Cache
	c.Write(0x002, 0x05) // even half of entry 1: blue only
	c.Write(0x003, 0xF0) // odd half of entry 1: r nibble 0xF, g nibble zero
	got := c.Entry(1)
	if r := uint8(got); r != 0xFF {
		t.Fatalf("red channel = %#x, want 0xff", r)
	}
	if b := uint8(got >> 16); b != 0x55 {
		t.Fatalf("blue channel = %#x, want 0x55 (untouched by the odd write)", b)
	}
}

func TestAlphaAlwaysOpaque(t *testing.T) {
	var c Cache
	for i := 0; i < NumEntries; i++ {
		if a := uint8(c.Entry(i) >> 24); a != 0xFF {
			t.Fatalf("Entry(%d) alpha = %#x before any write, want 0xff", i, a)
		}
	}

	c.Write(0x000, 0xFF)
	c.Write(0x001, 0xFF)
	if a := uint8(c.Entry(0) >> 24); a != 0xFF {
		t.Fatalf("Entry(0) alpha = %#x after writes, want 0xff", a)
	}
}

func TestResetClearsToOpaqueBlack(t *testing.T) {
	var c Cache
	c.Write(0x000, 0xFF)
	c.Write(0x001, 0xFF)
	c.Reset()

	for i := 0; i < NumEntries; i++ {
		if got := c.Entry(i); got != 0xFF000000 {
			t.Fatalf("Entry(%d) = %#08x after Reset, want 0xff000000", i, got)
		}
	}
}

func TestWriteIsIdempotentForSameBytes(t *testing.T) {
	var a, b Cache
	for off := 0; off < 0x20; off++ {
		a.Write(off, uint8(off*7))
	}
	for off := 0; off < 0x20; off++ {
		b.Write(off, uint8(off*7))
	}
	for i := 0; i < 0x10; i++ {
		if a.Entry(i) != b.Entry(i) {
			t.Fatalf("Entry(%d) differs between identically-written caches: %#08x vs %#08x", i, a.Entry(i), b.Entry(i))
		}
	}
}
