// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX gshare Calibration Predictor
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Not part of the TAGE core — spec.md is explicit that a trivial gshare baseline is retained
// only as a calibration reference, not specified in detail. It exists so a harness run can be
// pointed at either predictor with the same trace and confirm the TAGE engine's geometric
// history and allocation machinery actually buys something over a single flat table.
//
// gshare is the simplest useful branch predictor: one PC-XOR-history indexed table of 2-bit
// saturating counters, no tags, no allocation, no useful bits. It reuses tage's saturating
// counter primitives rather than re-deriving SatInc/SatDec — one clamp primitive in the module,
// not two competing ones.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package gshare

import (
	"github.com/suprax-arch/tage/internal/branch"
	"github.com/suprax-arch/tage/internal/tage"
)

const (
	// HistoryBits is log2 of the table size, and also how many low global-history bits feed
	// the index.
	HistoryBits = 14
	entries     = 1 << HistoryBits
	ctrMax      = 3
	ctrInit     = 2
	takenThresh = ctrMax / 2
)

// Predictor is the PC-XOR-history indexed flat table. It satisfies branch.Predictor, the same
// interface tage.Predictor does, so a harness can run either without a type switch.
type Predictor struct {
	counters [entries]int
	history  uint32 // low HistoryBits bits are the live global history

	conditional bool
	index       uint32
}

// New returns a gshare predictor with every counter at the neutral-but-taken init value.
func New() *Predictor {
	p := &Predictor{}
	for i := range p.counters {
		p.counters[i] = ctrInit
	}
	return p
}

// Predict answers whether bi will be taken. Non-conditional branches are always-taken and
// touch no state, identical in spirit to tage.Predictor's wrapper.
func (p *Predictor) Predict(bi branch.Info) branch.Prediction {
	p.conditional = branch.IsConditional(bi)
	if !p.conditional {
		return branch.Prediction{Direction: true, Target: 0}
	}

	p.index = (uint32(bi.Address) ^ p.history) & (entries - 1)
	taken := p.counters[p.index] > takenThresh
	return branch.Prediction{Direction: taken, Target: 0}
}

// Update reinforces or weakens the counter the matching Predict used, then shifts the real
// outcome into the global history.
func (p *Predictor) Update(taken bool, target uint64) {
	if !p.conditional {
		return
	}

	if taken {
		p.counters[p.index] = tage.SatInc(p.counters[p.index], ctrMax)
	} else {
		p.counters[p.index] = tage.SatDec(p.counters[p.index])
	}

	p.history <<= 1
	if taken {
		p.history |= 1
	}
	p.history &= entries - 1
}
