// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Index / Tag Hashing (C5)
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Every table needs two independent hashes of (PC, history): an index into the TageEntries-deep
// table, and a TagWidth-bit tag to disambiguate collisions. Both mix in folded history so that
// two PCs with the same low bits but different recent history land in different slots.
//
// index[3] deliberately reuses compressedIndex[2] instead of compressedIndex[3] — this is the
// reference model's one acknowledged quirk (spec §4.5, §9 open question 2). It is preserved
// here rather than "fixed" because the spec requires bit-for-bit reference equivalence; fixing
// it would change which entries alias across tables 2 and 3 and silently change every
// allocation/arbitration decision downstream.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

// computeTag derives the TagWidth-bit tag for table i from the PC and that table's two
// compressed-tag folds (spec §4.5: PC ^ CSR1 ^ CSR2, masked to TagWidth bits).
func computeTag(pc uint64, csr1, csr2 *FoldedHistory) uint32 {
	t := uint32(pc) ^ csr1.Value ^ csr2.Value
	return t & tagMask
}

// computeIndex derives the TageLog-bit index for table i. compIdx is that table's own folded
// index history, except for table 3 which (per the reference) reads table 2's fold instead.
func computeIndex(table int, pc uint64, compIdx [NumTables]*FoldedHistory, phr uint16) uint32 {
	p := uint32(pc)
	ph := uint32(phr)

	var idx uint32
	switch table {
	case 0:
		idx = p ^ (p >> TageLog) ^ compIdx[0].Value ^ ph ^ (ph >> TageLog)
	case 1:
		idx = p ^ (p >> (TageLog - 1)) ^ compIdx[1].Value ^ ph
	case 2:
		idx = p ^ (p >> (TageLog - 2)) ^ compIdx[2].Value ^ (ph & 63)
	case 3:
		// NOTE: reads compIdx[2], not compIdx[3] — preserved reference quirk, see file header.
		idx = p ^ (p >> (TageLog - 3)) ^ compIdx[2].Value ^ (ph & 7)
	default:
		panic("tage: computeIndex: table out of range")
	}
	return idx & (TageEntries - 1)
}
