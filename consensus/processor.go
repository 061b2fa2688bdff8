package consensus

import (
	"context"
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// Processor holds the FFG state machine's four fields (spec §3). It is
// created once at genesis (all bits false, all three checkpoints equal)
// and mutated only by AdvanceEpoch, exactly once per epoch boundary.
type Processor struct {
	// JustificationBits is most-recent-epoch-first: bit 0 is the current
	// epoch, bit 3 the fourth-most-recent.
	JustificationBits [4]bool

	CurrentJustifiedCheckpoint  Checkpoint
	PreviousJustifiedCheckpoint Checkpoint
	FinalizedCheckpoint         Checkpoint
}

// NewProcessor constructs a genesis processor: all bits false, all three
// checkpoints set to the given genesis checkpoint.
func NewProcessor(genesis Checkpoint) *Processor {
	return &Processor{
		CurrentJustifiedCheckpoint:  genesis,
		PreviousJustifiedCheckpoint: genesis,
		FinalizedCheckpoint:         genesis,
	}
}

// Copy returns a deep copy of the processor, following the teacher's
// Store.Copy() convention for safely handing a snapshot to a caller that
// may mutate it independently (e.g. to explore a speculative advance
// without touching the canonical instance).
func (p *Processor) Copy() *Processor {
	cp := *p
	return &cp
}

// AdvanceEpoch implements spec §4.7's four-rule FFG state machine. All
// registry reads happen before any field of p is mutated: either every
// lookup succeeds and the whole new state (bits, checkpoints, and any
// finalization) commits atomically, or none of it does. This is a strict
// reading of spec §4.7's "state is left unmodified if the first balance
// lookup fails" requirement — see DESIGN.md for why the stronger
// all-or-nothing behavior was chosen over the weaker literal one.
//
// previousCheckpoint and currentCheckpoint are the candidate checkpoints
// for the previous and current epoch's vote tests, respectively; the
// caller (typically a state-transition component outside this package)
// derives them from the chain head before calling.
func (p *Processor) AdvanceEpoch(ctx context.Context, previousCheckpoint, currentCheckpoint Checkpoint, registry Registry) error {
	if currentCheckpoint.Epoch() <= p.CurrentJustifiedCheckpoint.Epoch() {
		return ErrAlreadyAdvanced
	}

	var totalActive, prevBalance, curBalance uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := registry.TotalActiveBalance(gctx)
		if err != nil {
			return fmt.Errorf("consensus: total active balance: %w", err)
		}
		totalActive = v
		return nil
	})
	g.Go(func() error {
		v, err := registry.AttestingTargetBalance(gctx, previousCheckpoint)
		if err != nil {
			return fmt.Errorf("consensus: attesting target balance (previous): %w", err)
		}
		prevBalance = v
		return nil
	})
	g.Go(func() error {
		v, err := registry.AttestingTargetBalance(gctx, currentCheckpoint)
		if err != nil {
			return fmt.Errorf("consensus: attesting target balance (current): %w", err)
		}
		curBalance = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	oldPrevJustified := p.PreviousJustifiedCheckpoint
	oldCurJustified := p.CurrentJustifiedCheckpoint
	oldBits := p.JustificationBits

	newPreviousJustified := oldCurJustified
	newCurrentJustified := oldCurJustified
	newBits := [4]bool{false, oldBits[0], oldBits[1], oldBits[2]}

	if sufficientWeight(prevBalance, totalActive) {
		newCurrentJustified = previousCheckpoint
		newBits[1] = true
	}
	if sufficientWeight(curBalance, totalActive) {
		newCurrentJustified = currentCheckpoint
		newBits[0] = true
	}

	// Rules are evaluated in order and are independent: a later rule may
	// overwrite the finalization a prior rule made on this same call
	// (spec §4.7, §9 "Open question" — no short-circuiting on first match).
	finalized := p.FinalizedCheckpoint
	epoch := currentCheckpoint.Epoch()

	if newBits[1] && newBits[2] && newBits[3] && oldPrevJustified.Epoch()+3 == epoch { // FF-1
		finalized = oldPrevJustified
	}
	if newBits[1] && newBits[2] && oldPrevJustified.Epoch()+2 == epoch { // FF-2
		finalized = oldPrevJustified
	}
	if newBits[0] && newBits[1] && newBits[2] && oldCurJustified.Epoch()+2 == epoch { // FF-3
		finalized = oldCurJustified
	}
	if newBits[0] && newBits[1] && oldCurJustified.Epoch()+1 == epoch { // FF-4
		finalized = oldCurJustified
	}

	p.PreviousJustifiedCheckpoint = newPreviousJustified
	p.CurrentJustifiedCheckpoint = newCurrentJustified
	p.JustificationBits = newBits
	p.FinalizedCheckpoint = finalized
	return nil
}

// sufficientWeight implements the 3x/2x balance comparison of the previous-
// and current-epoch vote tests: 3 * attesting_target_balance >=
// 2 * total_active_balance.
// Both multiplications are promoted to 128 bits via bits.Mul64 so the
// comparison is exact even when a balance does not fit the 63-bit contract
// spec §4.7 otherwise asks callers to guarantee.
func sufficientWeight(attesting, total uint64) bool {
	hiL, loL := bits.Mul64(attesting, 3)
	hiR, loR := bits.Mul64(total, 2)
	if hiL != hiR {
		return hiL > hiR
	}
	return loL >= loR
}
