package consensus

import "context"

// Registry is the external collaborator spec §4.6 describes: aggregate
// validator-balance queries relative to some validator-set snapshot. The
// FFG processor treats both as monotone, non-negative aggregates and never
// computes them itself.
type Registry interface {
	// TotalActiveBalance sums the effective balances of active validators.
	TotalActiveBalance(ctx context.Context) (uint64, error)
	// AttestingTargetBalance sums the effective balances of validators
	// whose attestations in the relevant epoch voted the given checkpoint
	// as target.
	AttestingTargetBalance(ctx context.Context, cp Checkpoint) (uint64, error)
}
