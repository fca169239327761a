// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX Harness Run Summary
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Generalizes the teacher's own TAGEStats/Stats() into something a harness run can emit once a
// trace is exhausted: overall accuracy plus the per-table occupancy snapshot, tagged with a
// run ID so two runs against the same trace (e.g. tage vs. gshare) can be told apart in logs
// and in whatever aggregates a report file into later.
//
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/suprax-arch/tage/internal/tage"
)

// Summary is the terminal output of one harness run. It is never read back in as input — this
// module has no persistence-across-runs goal (spec.md Non-goals).
type Summary struct {
	RunID       uuid.UUID        `json:"run_id"`
	Predictor   string           `json:"predictor"`
	Branches    uint64           `json:"branches"`
	Mispredicts uint64           `json:"mispredicts"`
	Tables      []tage.TableStats `json:"tables,omitempty"`
}

// New starts a Summary for a run, stamping it with a fresh run ID.
func New(predictor string) *Summary {
	return &Summary{RunID: uuid.New(), Predictor: predictor}
}

// Observe records the outcome of one predicted branch.
func (s *Summary) Observe(predicted, actual bool) {
	s.Branches++
	if predicted != actual {
		s.Mispredicts++
	}
}

// MispredictRate returns the fraction of observed branches mispredicted, 0 if none were
// observed.
func (s *Summary) MispredictRate() float64 {
	if s.Branches == 0 {
		return 0
	}
	return float64(s.Mispredicts) / float64(s.Branches)
}

// WriteJSON serializes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
