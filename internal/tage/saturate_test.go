package tage

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SATURATING COUNTER TESTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func TestSatInc_ClampsAtMax(t *testing.T) {
	if got := SatInc(BimodalCtrMax, BimodalCtrMax); got != BimodalCtrMax {
		t.Errorf("SatInc(max, max) = %d, want %d", got, BimodalCtrMax)
	}
}

func TestSatInc_IncrementsBelowMax(t *testing.T) {
	if got := SatInc(1, BimodalCtrMax); got != 2 {
		t.Errorf("SatInc(1, max) = %d, want 2", got)
	}
}

func TestSatDec_ClampsAtZero(t *testing.T) {
	if got := SatDec(0); got != 0 {
		t.Errorf("SatDec(0) = %d, want 0", got)
	}
}

func TestSatDec_Decrements(t *testing.T) {
	if got := SatDec(2); got != 1 {
		t.Errorf("SatDec(2) = %d, want 1", got)
	}
}

func TestSatInc_FullWalkToMax(t *testing.T) {
	v := 0
	for i := 0; i < TagePredCtrMax+5; i++ {
		v = SatInc(v, TagePredCtrMax)
	}
	if v != TagePredCtrMax {
		t.Errorf("after repeated SatInc, v = %d, want %d", v, TagePredCtrMax)
	}
}

func TestSatDec_FullWalkToZero(t *testing.T) {
	v := TagePredCtrMax
	for i := 0; i < TagePredCtrMax+5; i++ {
		v = SatDec(v)
	}
	if v != 0 {
		t.Errorf("after repeated SatDec, v = %d, want 0", v)
	}
}
