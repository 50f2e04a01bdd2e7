package verify

import (
	"github.com/kaspa-genesis/verify/internal/consensus"
	"github.com/kaspa-genesis/verify/internal/kvsource"
)

// maxWalkSteps is the defensive bound on chain-walk length. Genesis is
// reached in far fewer steps in practice; this exists only to turn a
// cyclic or unbounded pruning-point chain into a prompt, diagnosable
// failure instead of an infinite loop.
const maxWalkSteps = 1000

// WalkResult is the outcome of a successful WalkToGenesis call.
type WalkResult struct {
	Steps uint32
}

// StepFunc is called once per walk step, after the header at the current
// hash has been fetched and its hash verified, before advancing to its
// pruning point. It exists only for verbose tracing; a nil StepFunc is a
// silent walk.
type StepFunc func(step uint32, current consensus.Hash)

// WalkToGenesis walks pruning-point links from start until it reaches
// target, recomputing and checking each header's hash along the way. It
// terminates on the first error and never retries.
func WalkToGenesis(src kvsource.Source, start, target consensus.Hash, onStep StepFunc) (WalkResult, error) {
	current := start
	var steps uint32

	for {
		if current == target {
			return WalkResult{Steps: steps}, nil
		}

		header, ok, err := kvsource.GetHeader(src, current)
		if err != nil {
			return WalkResult{}, err
		}
		if !ok {
			return WalkResult{}, newErr(consensus.ErrHeaderMissing, "header missing for %x", current)
		}

		h, err := consensus.HeaderHash(header)
		if err != nil {
			return WalkResult{}, err
		}
		if h != current {
			return WalkResult{}, newErr(consensus.ErrHashMismatch, "expected %x, recomputed %x", current, h)
		}

		if onStep != nil {
			onStep(steps, current)
		}

		current = header.PruningPoint

		steps++
		if steps > maxWalkSteps {
			return WalkResult{}, newErr(consensus.ErrChainTooLong, "exceeded %d steps walking from %x toward %x", maxWalkSteps, start, target)
		}
	}
}
