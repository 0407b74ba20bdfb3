package cpu

import "testing"

func TestFakeCoreExecCountsTicks(t *testing.T) {
	var seen []Bus
	core := NewFakeCore(func(numTicks int, pins Bus) Bus {
		seen = append(seen, pins)
		return pins
	})

	executed := core.Exec(10)
	if executed != 10 {
		t.Fatalf("Exec(10) executed = %d, want 10", executed)
	}
	if len(seen) != 10 {
		t.Fatalf("tick callback invoked %d times, want 10", len(seen))
	}
	for i, pins := range seen {
		if pins.Address != uint16(i) {
			t.Errorf("tick %d: address = 0x%04X, want 0x%04X", i, pins.Address, i)
		}
		if pins.Flags&(MREQ|RD|M1) != MREQ|RD|M1 {
			t.Errorf("tick %d: flags = %#x, want MREQ|RD|M1 set", i, pins.Flags)
		}
	}
}

func TestFakeCoreResetRewindsPC(t *testing.T) {
	var lastAddr uint16
	core := NewFakeCore(func(numTicks int, pins Bus) Bus {
		lastAddr = pins.Address
		return pins
	})

	core.Exec(5)
	if lastAddr != 4 {
		t.Fatalf("lastAddr after Exec(5) = %d, want 4", lastAddr)
	}
	core.Reset()
	core.Exec(1)
	if lastAddr != 0 {
		t.Fatalf("lastAddr after Reset+Exec(1) = %d, want 0", lastAddr)
	}
}
