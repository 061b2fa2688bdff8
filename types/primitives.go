// Package types defines the beacon chain's value types and container
// entities (spec §3) and their hand-written SSZ codec methods, in the
// method-set convention fastssz's sszgen emits (MarshalSSZ/UnmarshalSSZ/
// SizeSSZ/HashTreeRoot), so these are drop-in compatible with
// fastssz-generated code even though they're hand-written here to support
// the truncation and injectable-hasher requirements sszgen doesn't cover.
package types

import "github.com/lumenforge/beacon/ssz"

// H256 is 32 raw bytes: the chain's root/hash type.
type H256 = ssz.H256

// H768 is 96 raw bytes, used for the BLS randao reveal.
type H768 [96]byte

// Signature is a 96-byte BLS signature. It is the one field type the codec
// ever truncates: BeaconBlockHeader.HashTreeRoot leaves its trailing
// Signature field out of the Merkle root, and a BeaconBlock's identity is
// the root of its derived header (DeriveHeader, BlockID).
// BeaconBlock.HashTreeRoot itself includes the signature.
type Signature [96]byte

// BLSPubkey is a 48-byte BLS public key.
type BLSPubkey [48]byte

const (
	sizeH256      = 32
	sizeH768      = 96
	sizeSignature = 96
	sizeBLSPubkey = 48
)

func readFixed(src []byte, n int) ([]byte, []byte, error) {
	if len(src) < n {
		return nil, nil, ssz.ErrInvalidLength
	}
	return src[:n], src[n:], nil
}

// Root is the block/state identifier type used throughout the storage
// interface: the tree-hash output of a BeaconBlockHeader.
type Root = H256

// Slot and ValidatorIndex are bare u64 domain aliases; kept as distinct
// named types (not raw uint64) so a caller can't accidentally pass one
// where the other is expected.
type Slot uint64
type ValidatorIndex uint64
type Epoch uint64

// SecondsPerSlot and SlotsPerEpoch are operational scheduling constants:
// the FFG state machine itself is time-independent (advance_epoch takes
// caller-supplied checkpoints), but a running node still needs to know
// when an epoch boundary falls in wall-clock time to decide when to call
// it. These match the conventional beacon-chain defaults.
const (
	SecondsPerSlot uint64 = 12
	SlotsPerEpoch  uint64 = 32
)

// EpochAtSlot returns the epoch containing slot.
func EpochAtSlot(slot Slot) Epoch {
	return Epoch(uint64(slot) / SlotsPerEpoch)
}
