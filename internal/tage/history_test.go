package tage

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HISTORY REGISTER TESTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func TestGlobalHistory_StartsZero(t *testing.T) {
	var g GlobalHistory
	for i := 0; i < GHRSize; i++ {
		if g.Bit(i) {
			t.Fatalf("Bit(%d) = true on a fresh GlobalHistory, want false", i)
		}
	}
}

func TestGlobalHistory_ShiftInOrdersBitsMostRecentFirst(t *testing.T) {
	var g GlobalHistory
	g.ShiftIn(true)
	g.ShiftIn(false)
	g.ShiftIn(true)

	if !g.Bit(0) {
		t.Error("Bit(0) = false, want true (most recent outcome)")
	}
	if g.Bit(1) {
		t.Error("Bit(1) = true, want false")
	}
	if !g.Bit(2) {
		t.Error("Bit(2) = false, want true (oldest of the three)")
	}
	for i := 3; i < GHRSize; i++ {
		if g.Bit(i) {
			t.Fatalf("Bit(%d) = true, want false (never shifted in)", i)
		}
	}
}

func TestGlobalHistory_OldestRetainedBitReachable(t *testing.T) {
	var g GlobalHistory
	g.ShiftIn(true)
	for i := 0; i < GHRSize-1; i++ {
		g.ShiftIn(false)
	}
	if !g.Bit(GHRSize - 1) {
		t.Errorf("Bit(%d) = false, want true (the oldest retained bit)", GHRSize-1)
	}
}

func TestGlobalHistory_OverflowPastCapacityDoesNotPanic(t *testing.T) {
	var g GlobalHistory
	for i := 0; i < 4*GHRSize; i++ {
		g.ShiftIn(i%2 == 0)
	}
}

func TestPathHistory_StartsZero(t *testing.T) {
	var p PathHistory
	if p.Value() != 0 {
		t.Errorf("Value() = %d, want 0", p.Value())
	}
}

func TestPathHistory_MasksTo16Bits(t *testing.T) {
	var p PathHistory
	for i := 0; i < 100; i++ {
		p.ShiftIn(uint64(i))
		if p.Value() > 0xFFFF {
			t.Fatalf("Value() = %#x exceeds 16 bits after %d shifts", p.Value(), i+1)
		}
	}
}

func TestPathHistory_TracksLowPCBit(t *testing.T) {
	var p PathHistory
	p.ShiftIn(0x1000) // even address, low bit 0
	if p.Value()&1 != 0 {
		t.Errorf("low bit = 1, want 0 for an even address")
	}
	p.ShiftIn(0x1001) // odd address, low bit 1
	if p.Value()&1 != 1 {
		t.Errorf("low bit = 0, want 1 for an odd address")
	}
}
