// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX TAGE Branch Predictor - Arbitration & Learning (C6, C7, C9)
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Predictor ties the bimodal base predictor, the four tagged tables, and the two history
// registers together behind the two operations the harness actually calls: Predict and Update.
// They must alternate strictly — Predict primes a one-slot scratch, Update consumes it — because
// every mutation (counter updates, allocation, history shift) needs to know exactly which
// tables/indices the prediction came from, and there is no hardware analogue for "two
// predictions in flight" here (spec §5: no concurrency, no lookahead).
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package tage

import "github.com/suprax-arch/tage/internal/branch"

type requestState int

const (
	idle requestState = iota
	predicted
)

// scratch is the per-request data a Predict call hands to the matching Update call. Capacity
// one: a second Predict before the matching Update is a contract violation (spec §4.8).
type scratch struct {
	state       requestState
	conditional bool
	pc          uint64

	index [NumTables]uint32
	tag   [NumTables]uint32

	primeTable int // sentinelTable if no tagged table matched
	altTable   int // sentinelTable if no shorter-history tagged table matched

	primePred bool
	altPred   bool
	finalPred bool
}

// Predictor is the complete TAGE engine: bimodal base predictor, NumTables geometric-history
// tagged tables, their folded-history indexing machinery, global/path history, and the
// graceful-reset clock.
type Predictor struct {
	bimodal *Bimodal
	Tables  [NumTables]TaggedTable

	compIdx [NumTables]*FoldedHistory
	compTag [2][NumTables]*FoldedHistory

	ghr GlobalHistory
	phr PathHistory

	clock          int
	clockFlip      bool
	altBetterCount int

	req scratch
}

// NewPredictor constructs a predictor with all tables zeroed, the bimodal table at its neutral
// init value, and altBetterCount at its "trust alt for fresh entries" init value — exactly the
// reference's construction order.
func NewPredictor() *Predictor {
	p := &Predictor{
		bimodal:        NewBimodal(),
		altBetterCount: altBetterInit,
	}
	for i := 0; i < NumTables; i++ {
		p.compIdx[i] = NewFoldedHistory(geometric[i], TageLog)
		p.compTag[0][i] = NewFoldedHistory(geometric[i], TagWidth)
		p.compTag[1][i] = NewFoldedHistory(geometric[i], TagWidth-1)
	}
	p.req.primeTable = sentinelTable
	p.req.altTable = sentinelTable
	return p
}

// Predict answers whether bi will be taken. Non-conditional branches return an unconditional
// taken prediction and touch no state at all (spec §4.6 step 1). Conditional branches compute
// the base (bimodal) prediction, hash into all four tagged tables, pick a prime and alternate
// provider, and arbitrate between them.
func (p *Predictor) Predict(bi branch.Info) branch.Prediction {
	if p.req.state == predicted {
		panic("tage: Predict called while a prediction is already outstanding")
	}

	p.req = scratch{
		state:       predicted,
		conditional: branch.IsConditional(bi),
		pc:          bi.Address,
		primeTable:  sentinelTable,
		altTable:    sentinelTable,
	}

	if !p.req.conditional {
		return branch.Prediction{Direction: true, Target: 0}
	}

	pc := bi.Address
	basePrediction := p.bimodal.Predict(pc)

	var idx, tag [NumTables]uint32
	for i := 0; i < NumTables; i++ {
		tag[i] = computeTag(pc, p.compTag[0][i], p.compTag[1][i])
		idx[i] = computeIndex(i, pc, p.compIdx, p.phr.Value())
	}

	primeTable := sentinelTable
	for i := 0; i < NumTables; i++ {
		if p.Tables[i].Entries[idx[i]].Tag == tag[i] {
			primeTable = i
			break
		}
	}

	altTable := sentinelTable
	for i := primeTable + 1; i < NumTables; i++ {
		if p.Tables[i].Entries[idx[i]].Tag == tag[i] {
			altTable = i
			break
		}
	}

	var altPred bool
	if altTable == sentinelTable {
		altPred = basePrediction
	} else {
		altPred = p.Tables[altTable].Entries[idx[altTable]].Taken()
	}

	var primePred, finalPred bool
	if primeTable == sentinelTable {
		finalPred = altPred
	} else {
		entry := &p.Tables[primeTable].Entries[idx[primeTable]]
		primePred = entry.Ctr >= tageTaken

		freshAndUncertain := entry.Useful == 0 &&
			entry.Ctr >= newEntryCtrLow && entry.Ctr <= newEntryCtrHigh
		if freshAndUncertain && p.altBetterCount >= altBetterThreshold {
			// §9 open question 1: this is the AND form of the reference's tautological OR —
			// distrust the prime provider precisely when it's a fresh, still-uncertain entry
			// and the alternate has recently been the better bet.
			finalPred = altPred
		} else {
			finalPred = primePred
		}
	}

	p.req.index = idx
	p.req.tag = tag
	p.req.primeTable = primeTable
	p.req.altTable = altTable
	p.req.primePred = primePred
	p.req.altPred = altPred
	p.req.finalPred = finalPred

	return branch.Prediction{Direction: finalPred, Target: 0}
}

// Update informs the predictor of the real outcome of the most recently predicted branch:
// trains whichever provider produced the prediction, tracks altBetterCount for freshly
// allocated entries, allocates a new entry on misprediction, ages the graceful-reset clock, and
// advances global/path history. Must be called exactly once per Predict call.
func (p *Predictor) Update(taken bool, target uint64) {
	if p.req.state != predicted {
		panic("tage: Update called with no outstanding prediction")
	}
	p.req.state = idle

	if !p.req.conditional {
		return
	}

	pc := p.req.pc
	actualDir := taken
	predDir := p.req.finalPred
	primeTable := p.req.primeTable
	primePred := p.req.primePred
	altPred := p.req.altPred
	idx := p.req.index
	tagv := p.req.tag

	newEntry := false

	// Step A: train the provider that produced the prediction.
	if primeTable < NumTables {
		entry := &p.Tables[primeTable].Entries[idx[primeTable]]

		if predDir != altPred {
			if predDir == actualDir {
				entry.Useful = SatInc(entry.Useful, UsefulBitsMax)
			} else {
				entry.Useful = SatDec(entry.Useful)
			}
		}

		if actualDir {
			entry.Ctr = SatInc(entry.Ctr, TagePredCtrMax)
		} else {
			entry.Ctr = SatDec(entry.Ctr)
		}

		// Step B: track altBetterCount for newly allocated entries. Evaluated against the
		// counter/useful values *after* the training above, matching the reference.
		if entry.Useful == 0 && entry.Ctr >= newEntryCtrLow && entry.Ctr <= newEntryCtrHigh {
			newEntry = true
			if primePred != altPred {
				if altPred == actualDir {
					p.altBetterCount = SatInc(p.altBetterCount, altBetterMax)
				} else {
					p.altBetterCount = SatDec(p.altBetterCount)
				}
			}
		}
	} else {
		p.bimodal.Update(pc, actualDir)
	}

	// Step C: allocate on misprediction, preferring the longest-history free slot.
	mispredicted := predDir != actualDir
	eligible := !newEntry || (newEntry && primePred != actualDir)
	if eligible && mispredicted && primeTable > 0 {
		p.allocate(primeTable, idx, tagv, actualDir)
	}

	// Step D: graceful useful-bit reset.
	p.tickResetClock()

	// Step E: history updates, in order.
	p.ghr.ShiftIn(actualDir)
	for i := 0; i < NumTables; i++ {
		p.compIdx[i].Update(&p.ghr)
		p.compTag[0][i].Update(&p.ghr)
		p.compTag[1][i].Update(&p.ghr)
	}
	p.phr.ShiftIn(pc)
}

// allocate scans tables 0..primeTable-1 for a free (useful==0) slot, preferring the longest
// history (lowest index) among candidates. If none is free, every candidate table's useful bit
// decays by one instead (§4.7 step C.2, §9 open question 3/5).
func (p *Predictor) allocate(primeTable int, idx, tagv [NumTables]uint32, actualDir bool) {
	victim := sentinelTable
	for i := 0; i < primeTable; i++ {
		if p.Tables[i].Entries[idx[i]].Useful == 0 {
			victim = i
			break
		}
	}

	if victim == sentinelTable {
		for i := primeTable - 1; i >= 0; i-- {
			entry := &p.Tables[i].Entries[idx[i]]
			entry.Useful = SatDec(entry.Useful)
		}
		return
	}

	entry := &p.Tables[victim].Entries[idx[victim]]
	entry.Tag = tagv[victim]
	entry.Useful = 0
	if actualDir {
		entry.Ctr = newEntryCtrHigh
	} else {
		entry.Ctr = newEntryCtrLow
	}
}
