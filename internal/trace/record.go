// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX Trace Record Format
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package trace

import "github.com/suprax-arch/tage/internal/branch"

// Record is one dynamic branch instruction from a trace: the address and flags Predict needs,
// plus the real outcome Update needs once it's known.
type Record struct {
	Address uint64
	Flags   branch.Flags
	Taken   bool
	Target  uint64
}

// Info projects the Record's predictable fields into a branch.Info, discarding the fields only
// Update cares about.
func (r Record) Info() branch.Info {
	return branch.Info{Address: r.Address, Flags: r.Flags}
}
