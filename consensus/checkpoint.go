// Package consensus implements the Casper FFG justification/finalization
// state machine advanced once per epoch boundary (spec §4.7).
package consensus

// Checkpoint is the FFG abstract capability from spec §3: any value
// exposing Epoch(). types.Checkpoint implements it directly; callers may
// supply their own concrete type as long as Epoch() is stable.
type Checkpoint interface {
	Epoch() uint64
}
