// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Tagged Table Bank (C4)
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Four independent tables, each 2^TageLog entries deep, each entry a {counter, tag, useful}
// triple. Semantically: "for branches whose (PC, folded history of length geometric[i])
// collide into this slot, the last observer with tag t predicts counter c, with confidence
// useful." All tables start zeroed — tag 0 is a valid tag, so a zeroed entry only ever matches
// a lookup that also happens to hash to tag 0, the same subtle-but-harmless aliasing the
// reference model has.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

// TaggedEntry is one slot of a tagged table: a 3-bit counter, a 9-bit tag, a 2-bit useful
// counter. Fields are plain ints; range is an invariant maintained by callers via
// SatInc/SatDec, never enforced by the type itself (spec §7: range violations are a bug, not
// a recoverable condition).
type TaggedEntry struct {
	Ctr    int
	Tag    uint32
	Useful int
}

// TaggedTable is one of the NumTables geometric-history tables.
type TaggedTable struct {
	Entries [TageEntries]TaggedEntry
}

// Taken reports this entry's direction when used as an alternate provider: the reference (and
// this spec, §9 open question 4) require the counter to be fully saturated, not just past the
// midpoint — a stricter bar than the prime provider's own threshold.
func (e *TaggedEntry) Taken() bool {
	return e.Ctr >= altTaken
}
