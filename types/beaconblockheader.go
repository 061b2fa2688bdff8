package types

import "github.com/lumenforge/beacon/ssz"

const beaconBlockHeaderSize = 8 + sizeH256 + sizeH256 + sizeH256 + sizeSignature

func (h *BeaconBlockHeader) SizeSSZ() int { return beaconBlockHeaderSize }

func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return h.MarshalSSZTo(make([]byte, 0, beaconBlockHeaderSize))
}

func (h *BeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(h.Slot))
	dst = append(dst, h.PreviousBlockRoot[:]...)
	dst = append(dst, h.StateRoot[:]...)
	dst = append(dst, h.BlockBodyRoot[:]...)
	dst = append(dst, h.Signature[:]...)
	return dst, nil
}

func (h *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != beaconBlockHeaderSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	h.Slot = Slot(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	copy(h.PreviousBlockRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	copy(h.StateRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	copy(h.BlockBodyRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	copy(h.Signature[:], buf[off:off+sizeSignature])
	return nil
}

// HashTreeRoot implements spec §4.5's block-identifier derivation: the
// header's own Signature field is always the zero value and is always
// truncated from its identity pre-image (spec §4.4 "Truncated containers"),
// so BeaconBlockHeader has no separate "full" tree-hash — this is its only
// one.
func (h *BeaconBlockHeader) HashTreeRoot(hasher ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(h.Slot)),
		ssz.H256(h.PreviousBlockRoot),
		ssz.H256(h.StateRoot),
		ssz.H256(h.BlockBodyRoot),
	}
	return ssz.Merkleize(hasher, chunks, 0), nil
}
