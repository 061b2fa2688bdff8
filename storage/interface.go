// Package storage defines the chain-backend collaborator spec §4.8
// describes: a key-value-backed chain index with canonical-depth mapping,
// block/auxiliary lookup, and atomic settlement-commit. The core consumes
// this interface; it never reaches into a concrete backend directly.
package storage

import (
	"errors"

	"github.com/lumenforge/beacon/types"
)

// ID is a block identifier: the tree-hash of its BeaconBlockHeader.
type ID = types.H256

var (
	// ErrNotExist is returned by any lookup of an unknown block identifier,
	// and by Head/Genesis when none is set (spec §7). LookupCanonDepth and
	// Auxiliary report a missing depth or key with ok == false and a nil
	// error instead.
	ErrNotExist = errors.New("storage: not found")
	// ErrCorrupted is returned when a stored value fails to decode, or an
	// expected column is missing (spec §7).
	ErrCorrupted = errors.New("storage: corrupted")
	// ErrIo is returned when a backend's underlying read, write, or commit
	// fails for reasons other than the key being absent or the value being
	// malformed (spec §7) — a disk error, a closed handle, a failed batch
	// commit. Backends wrap the concrete error so callers can still
	// recover it with errors.Unwrap while checking errors.Is(err, ErrIo).
	ErrIo = errors.New("storage: io failure")
)

// Record is a per-block record as spec §6 describes: the block itself,
// its post-state root bytes, its depth, its known children, and whether
// it is on the canonical chain.
type Record struct {
	Block    *types.BeaconBlock
	StateRaw []byte
	Depth    uint64
	Children []ID
	IsCanon  bool
}

// BlockInsert is one block-insertion entry in a commit Operation: it
// names the new block's parent so the backend can both store the record
// and extend the parent's Children list.
type BlockInsert struct {
	ID       ID
	Block    *types.BeaconBlock
	StateRaw []byte
	ParentID ID
	Depth    uint64
	IsCanon  bool
}

// Operation is the atomic batch spec §4.8's commit consumes: block
// inserts, canonical-depth remappings, auxiliary upserts, and head/genesis
// pointer updates. Either the whole batch is durable or none of it is.
type Operation struct {
	Inserts           []BlockInsert
	CanonDepthRemaps  map[uint64]ID
	CanonicalityFlips map[ID]bool
	AuxiliaryUpserts  map[string][]byte
	SetHead           *ID
	SetGenesis        *ID
}

// Store is the chain backend collaborator (spec §4.8).
type Store interface {
	Head() (ID, error)
	Genesis() (ID, error)
	Contains(id ID) (bool, error)
	IsCanon(id ID) (bool, error)
	BlockAt(id ID) (*types.BeaconBlock, error)
	DepthAt(id ID) (uint64, error)
	ChildrenAt(id ID) ([]ID, error)
	StateAt(id ID) ([]byte, error)
	LookupCanonDepth(depth uint64) (ID, bool, error)
	Auxiliary(key string) ([]byte, bool, error)
	Commit(op *Operation) error
	Close() error
}
