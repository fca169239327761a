package tage

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INDEX / TAG HASHING TESTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func newZeroFolds() [NumTables]*FoldedHistory {
	var out [NumTables]*FoldedHistory
	for i := 0; i < NumTables; i++ {
		out[i] = NewFoldedHistory(geometric[i], TageLog)
	}
	return out
}

func TestComputeTag_MaskedToTagWidth(t *testing.T) {
	csr1 := NewFoldedHistory(44, TagWidth)
	csr2 := NewFoldedHistory(44, TagWidth-1)
	csr1.Value = 0x1FF // the widest value a 9-bit fold can hold
	tag := computeTag(0xFFFFFFFF, csr1, csr2) // the 32-bit PC is what computeTag must mask down
	if tag >= 1<<TagWidth {
		t.Errorf("tag = %d exceeds %d-bit width", tag, TagWidth)
	}
}

func TestComputeIndex_MaskedToTageLog(t *testing.T) {
	folds := newZeroFolds()
	for table := 0; table < NumTables; table++ {
		idx := computeIndex(table, 0xFFFFFFFFFFFFFFFF, folds, 0xFFFF)
		if idx >= TageEntries {
			t.Errorf("table %d: index = %d exceeds %d entries", table, idx, TageEntries)
		}
	}
}

func TestComputeIndex_Table3UsesFold2NotFold3(t *testing.T) {
	// Preserved reference quirk (spec §4.5, §9 open question 2): index[3] must react to
	// compIdx[2]'s value and be insensitive to compIdx[3]'s value.
	folds := newZeroFolds()
	pc := uint64(0x1234)
	phr := uint16(0)

	base := computeIndex(3, pc, folds, phr)

	folds[3].Value = 0x1ABC & (TageEntries - 1)
	unchanged := computeIndex(3, pc, folds, phr)
	if unchanged != base {
		t.Errorf("index[3] changed when only compIdx[3] changed: %d -> %d", base, unchanged)
	}

	folds2 := newZeroFolds()
	folds2[2].Value = 0x1ABC & (TageEntries - 1)
	changed := computeIndex(3, pc, folds2, phr)
	if changed == base {
		t.Error("index[3] did not change when compIdx[2] changed")
	}
}

func TestComputeIndex_DifferentTablesUseDifferentPCShifts(t *testing.T) {
	folds := newZeroFolds()
	pc := uint64(1) << 20
	seen := map[uint32]bool{}
	for table := 0; table < NumTables; table++ {
		idx := computeIndex(table, pc, folds, 0)
		seen[idx] = true
	}
	if len(seen) < 2 {
		t.Errorf("all tables produced the same index for a single high PC bit: %v", seen)
	}
}

func TestComputeTag_Deterministic(t *testing.T) {
	csr1 := NewFoldedHistory(15, TagWidth)
	csr2 := NewFoldedHistory(15, TagWidth-1)
	csr1.Value = 5
	csr2.Value = 9
	a := computeTag(0xABCD, csr1, csr2)
	b := computeTag(0xABCD, csr1, csr2)
	if a != b {
		t.Errorf("computeTag not deterministic: %d vs %d", a, b)
	}
}
