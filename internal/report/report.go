// Package report defines the structured result of a verification run and
// renders it as human-readable progress output, matching spec.md §6's
// "human-readable progress by phase (informational only; not part of the
// verification contract)".
package report

import (
	"fmt"
	"io"

	"github.com/kaspa-genesis/verify/internal/consensus"
)

// Status is the outcome of one phase.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Phase records one named step of the driver's seven-phase sequence.
type Phase struct {
	Name   string
	Status Status
}

// GenesisKind is the phase-6 classification of the genesis header's UTXO
// commitment; it is informational, never a failure.
type GenesisKind string

const (
	GenesisUnknown                 GenesisKind = ""
	GenesisOriginal                GenesisKind = "original genesis (empty UTXO set)"
	GenesisHardwiredWithCheckpoint GenesisKind = "hardwired genesis with checkpoint UTXO set"
)

// Report is the full result of a Driver.Run call, whether it succeeded or
// failed partway through.
type Report struct {
	Phases         []Phase
	ChainTip       consensus.Hash
	ChainWalkSteps uint32
	GenesisKind    GenesisKind
}

// Success reports whether every recorded phase passed or was skipped.
func (r *Report) Success() bool {
	for _, p := range r.Phases {
		if p.Status == StatusFailed {
			return false
		}
	}
	return true
}

// WriteText renders the report as plain multi-line text, one line per
// phase, for cmd/kaspa-genesis-verify's non-verbose output.
func WriteText(w io.Writer, r *Report) error {
	for _, p := range r.Phases {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", p.Status, p.Name); err != nil {
			return err
		}
	}
	if r.ChainWalkSteps > 0 {
		if _, err := fmt.Fprintf(w, "chain walk: %d steps to genesis\n", r.ChainWalkSteps); err != nil {
			return err
		}
	}
	if r.GenesisKind != GenesisUnknown {
		if _, err := fmt.Fprintf(w, "genesis classification: %s\n", r.GenesisKind); err != nil {
			return err
		}
	}
	return nil
}
