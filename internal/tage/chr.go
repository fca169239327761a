// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Compressed History Register (C2)
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// A FoldedHistory incrementally maintains fold(GHR[0..OrigLen-1]) as a TargetLen-bit value,
// without ever re-scanning the OrigLen-bit window. This is the PPM-paper folded CSR: three
// families of it are wired per table (compressedIndex, compressedTag[0], compressedTag[1]),
// differing only in OrigLen/TargetLen.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

// FoldedHistory folds a GHR window of OrigLen bits into a Value of TargetLen bits.
type FoldedHistory struct {
	OrigLen   int
	TargetLen int
	Value     uint32
}

// NewFoldedHistory builds a FoldedHistory starting at the zero value, as the reference does.
func NewFoldedHistory(origLen, targetLen int) *FoldedHistory {
	return &FoldedHistory{OrigLen: origLen, TargetLen: targetLen}
}

// Update folds in the newest GHR bit and folds out the bit that just left the OrigLen-wide
// window. ghr must already reflect the new outcome at bit 0 (i.e. ShiftIn was called first) —
// this reads ghr.Bit(OrigLen) as the outgoing bit, which is exactly the pre-shift bit at
// OrigLen-1 (see spec §4.2).
func (f *FoldedHistory) Update(ghr *GlobalHistory) {
	mask := uint32(1<<uint(f.TargetLen)) - 1

	newBit := bitToU32(ghr.Bit(0))
	outgoing := bitToU32(ghr.Bit(f.OrigLen))

	v := (f.Value << 1) | newBit
	v ^= (v & (1 << uint(f.TargetLen))) >> uint(f.TargetLen)
	v ^= outgoing << uint(f.OrigLen%f.TargetLen)
	v &= mask

	f.Value = v
}

func bitToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
