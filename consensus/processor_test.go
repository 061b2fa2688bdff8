package consensus

import (
	"context"
	"testing"
)

type epochCheckpoint uint64

func (e epochCheckpoint) Epoch() uint64 { return uint64(e) }

// stubRegistry reports a fixed total balance and a per-checkpoint-epoch
// attesting balance, letting tests dial in exactly which epochs "pass" the
// 2/3 vote test.
type stubRegistry struct {
	total     uint64
	attesting map[uint64]uint64
}

func (r *stubRegistry) TotalActiveBalance(ctx context.Context) (uint64, error) {
	return r.total, nil
}

func (r *stubRegistry) AttestingTargetBalance(ctx context.Context, cp Checkpoint) (uint64, error) {
	return r.attesting[cp.Epoch()], nil
}

func TestAdvanceEpochFF4Finalizes(t *testing.T) {
	genesis := epochCheckpoint(0)
	p := NewProcessor(genesis)

	// Epoch 1: only the current-epoch vote passes.
	reg1 := &stubRegistry{total: 100, attesting: map[uint64]uint64{0: 0, 1: 100}}
	if err := p.AdvanceEpoch(context.Background(), epochCheckpoint(0), epochCheckpoint(1), reg1); err != nil {
		t.Fatalf("advance epoch 1: %v", err)
	}
	if p.JustificationBits != [4]bool{true, false, false, false} {
		t.Fatalf("epoch 1 bits = %v, want [true false false false]", p.JustificationBits)
	}
	if p.FinalizedCheckpoint.Epoch() != 0 {
		t.Fatalf("epoch 1 finalized = %d, want 0", p.FinalizedCheckpoint.Epoch())
	}

	// Epoch 2: both previous- and current-epoch votes pass.
	reg2 := &stubRegistry{total: 100, attesting: map[uint64]uint64{1: 100, 2: 100}}
	if err := p.AdvanceEpoch(context.Background(), epochCheckpoint(1), epochCheckpoint(2), reg2); err != nil {
		t.Fatalf("advance epoch 2: %v", err)
	}
	if p.FinalizedCheckpoint.Epoch() != 1 {
		t.Fatalf("epoch 2 finalized = %d, want 1", p.FinalizedCheckpoint.Epoch())
	}
}

func TestAdvanceEpochNoFinalizationWhenOnlyCurrentVotes(t *testing.T) {
	genesis := epochCheckpoint(0)
	p := NewProcessor(genesis)

	reg := &stubRegistry{total: 100, attesting: map[uint64]uint64{0: 0, 1: 100}}
	if err := p.AdvanceEpoch(context.Background(), epochCheckpoint(0), epochCheckpoint(1), reg); err != nil {
		t.Fatalf("advance epoch: %v", err)
	}
	if p.JustificationBits != [4]bool{true, false, false, false} {
		t.Fatalf("bits = %v, want [true false false false]", p.JustificationBits)
	}
	if p.FinalizedCheckpoint.Epoch() != 0 {
		t.Fatalf("finalized moved to %d, want unchanged at 0", p.FinalizedCheckpoint.Epoch())
	}
}

func TestAdvanceEpochRejectsNonIncreasingEpoch(t *testing.T) {
	p := NewProcessor(epochCheckpoint(0))
	reg := &stubRegistry{total: 100, attesting: map[uint64]uint64{0: 100}}
	if err := p.AdvanceEpoch(context.Background(), epochCheckpoint(0), epochCheckpoint(0), reg); err == nil {
		t.Fatal("expected ErrAlreadyAdvanced for a non-increasing epoch")
	}
}

func TestAdvanceEpochPropagatesRegistryError(t *testing.T) {
	p := NewProcessor(epochCheckpoint(0))
	before := *p
	boom := &erroringRegistry{}
	if err := p.AdvanceEpoch(context.Background(), epochCheckpoint(0), epochCheckpoint(1), boom); err == nil {
		t.Fatal("expected registry error to propagate")
	}
	if *p != before {
		t.Fatal("processor state mutated despite registry error")
	}
}

type erroringRegistry struct{}

func (erroringRegistry) TotalActiveBalance(ctx context.Context) (uint64, error) {
	return 0, errBoom
}
func (erroringRegistry) AttestingTargetBalance(ctx context.Context, cp Checkpoint) (uint64, error) {
	return 0, errBoom
}

var errBoom = testErr("boom")

type testErr string

func (e testErr) Error() string { return string(e) }
