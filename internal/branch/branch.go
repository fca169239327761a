// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX Branch Record - External Interfaces
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// These are the types the simulator harness (cmd/tagesim) and every direction predictor in this
// module (tage.Predictor, gshare.Predictor) agree on. Nothing in this package predicts
// anything — it is the wire contract described in spec §6, made concrete so it has a home
// outside of "the harness".
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package branch

// Flags is a bitfield describing a dynamic branch instruction. Only Conditional is consumed by
// any predictor in this module; the rest of the bitfield is reserved for a harness that wants
// to carry more metadata through without every predictor needing to know about it.
type Flags uint32

// Conditional marks a branch as conditional (BR_CONDITIONAL). Every other branch kind
// (unconditional jumps, calls, returns) is answered always-taken by each predictor's early
// IsConditional check and never reaches a predictor's interesting logic.
const Conditional Flags = 1 << 0

// Info is a branch record as presented to Predict: at minimum an address and the flags that
// say whether it's worth predicting at all.
type Info struct {
	Address uint64
	Flags   Flags
}

// IsConditional reports whether bi should be routed through a direction predictor at all, or
// handled by the trivial unconditional wrapper (always taken, target 0).
func IsConditional(bi Info) bool {
	return bi.Flags&Conditional != 0
}

// Prediction is the consumer-visible result of Predict: a direction guess and a target guess.
// Target is always 0 in this module — target-address prediction is out of scope
// (spec §1) and every predictor here reports 0 unconditionally, matching the harness's
// expectation that it ignores this field entirely.
type Prediction struct {
	Direction bool
	Target    uint64
}

// Predictor is satisfied by every direction predictor in this module. A Predictor's lifecycle
// is strict alternation: Predict, then exactly one matching Update, then Predict again — never
// two Predicts in a row, never an Update with no outstanding Predict.
type Predictor interface {
	// Predict answers "will this branch be taken?" and primes the predictor for exactly one
	// matching Update call.
	Predict(bi Info) Prediction

	// Update informs the predictor of the branch actually observed: the real direction and
	// the real target (target is accepted for interface symmetry with Predict but ignored by
	// every predictor in this module, per spec §6).
	Update(taken bool, target uint64)
}
