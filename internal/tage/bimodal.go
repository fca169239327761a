// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Bimodal Base Predictor (C3)
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// The bimodal table is the predictor of last resort: a flat, PC-indexed array of 2-bit
// saturating counters with no history, no tags, no allocation. It always has an opinion, so
// every branch gets a prediction even cold. It doubles as the alternate prediction whenever no
// tagged table shorter than the prime provider also hits.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

// Bimodal is the PC-indexed array of 2-bit saturating counters backing the base prediction.
type Bimodal struct {
	counters [BimodalEntries]int
}

// NewBimodal returns a bimodal table with every counter at the neutral-but-taken init value.
func NewBimodal() *Bimodal {
	b := &Bimodal{}
	for i := range b.counters {
		b.counters[i] = BimodalCtrInit
	}
	return b
}

// Index maps a PC onto a bimodal table slot.
func (b *Bimodal) Index(pc uint64) uint32 {
	return uint32(pc) & (BimodalEntries - 1)
}

// Predict returns the bimodal table's opinion for pc: taken iff the counter exceeds the
// half-max threshold.
func (b *Bimodal) Predict(pc uint64) bool {
	return b.counters[b.Index(pc)] > bimodalTaken
}

// Update reinforces or weakens the counter at pc's index according to the observed outcome.
func (b *Bimodal) Update(pc uint64, taken bool) {
	idx := b.Index(pc)
	if taken {
		b.counters[idx] = SatInc(b.counters[idx], BimodalCtrMax)
	} else {
		b.counters[idx] = SatDec(b.counters[idx])
	}
}

// Counter exposes the raw counter value at pc's index, for tests and stats only.
func (b *Bimodal) Counter(pc uint64) int {
	return b.counters[b.Index(pc)]
}
