// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Debug Statistics
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Read-only occupancy/useful-bit snapshots, grounded on the teacher's own TAGEStats/Stats().
// Never consulted by Predict or Update — a harness calls these purely to print a report after a
// run finishes.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

// TableStats summarizes one tagged table's occupancy at the moment Stats is called.
type TableStats struct {
	Table         int
	Allocated     int
	Useful        int
	AverageCtr    float64
	AverageUseful float64
}

// Stats returns a per-table occupancy snapshot. "Allocated" is a heuristic: an entry with a
// nonzero tag, counter, or useful bit has certainly been written at least once; an entry at the
// all-zero init value is indistinguishable from "never touched" vs. "touched and happened to
// land back on zero", exactly as in the reference tables (spec §3 item 2 has no validity bit).
func (p *Predictor) Stats() [NumTables]TableStats {
	var out [NumTables]TableStats
	for t := 0; t < NumTables; t++ {
		s := TableStats{Table: t}
		var totalCtr, totalUseful int
		for _, e := range p.Tables[t].Entries {
			if e.Tag != 0 || e.Ctr != 0 || e.Useful != 0 {
				s.Allocated++
			}
			if e.Useful != 0 {
				s.Useful++
			}
			totalCtr += e.Ctr
			totalUseful += e.Useful
		}
		if s.Allocated > 0 {
			s.AverageCtr = float64(totalCtr) / float64(TageEntries)
			s.AverageUseful = float64(totalUseful) / float64(TageEntries)
		}
		out[t] = s
	}
	return out
}

// AltBetterCount exposes the current altBetterCount counter, for tests and stats only.
func (p *Predictor) AltBetterCount() int {
	return p.altBetterCount
}

// BimodalCounter exposes the raw bimodal counter backing pc, for tests and stats only.
func (p *Predictor) BimodalCounter(pc uint64) int {
	return p.bimodal.Counter(pc)
}

// ClockState exposes the graceful-reset clock and flip flag, for tests only.
func (p *Predictor) ClockState() (clock int, flip bool) {
	return p.clock, p.clockFlip
}
