package types

import "github.com/lumenforge/beacon/ssz"

// blockFixedLen: slot(8) + previous_block_root(32) + state_root(32) +
// body offset(4) + signature(96), in declaration order (spec §4.2).
const blockFixedLen = 8 + sizeH256 + sizeH256 + ssz.OffsetBytes + sizeSignature

func (b *BeaconBlock) SizeSSZ() int {
	return blockFixedLen + b.Body.SizeSSZ()
}

func (b *BeaconBlock) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, b.SizeSSZ()))
}

func (b *BeaconBlock) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(b.Slot))
	dst = append(dst, b.PreviousBlockRoot[:]...)
	dst = append(dst, b.StateRoot[:]...)
	dst = ssz.WriteOffset(dst, blockFixedLen)
	dst = append(dst, b.Signature[:]...)
	return b.Body.MarshalSSZTo(dst)
}

func (b *BeaconBlock) UnmarshalSSZ(buf []byte) error {
	if len(buf) < blockFixedLen {
		return ssz.ErrInvalidLength
	}
	off := 0
	b.Slot = Slot(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	copy(b.PreviousBlockRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	copy(b.StateRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	bodyOffset := ssz.ReadOffset(buf[off : off+ssz.OffsetBytes])
	if bodyOffset != uint64(blockFixedLen) {
		return ssz.ErrInvalidOffset
	}
	off += ssz.OffsetBytes
	copy(b.Signature[:], buf[off:off+sizeSignature])
	off += sizeSignature
	return b.Body.UnmarshalSSZ(buf[off:])
}

// HashTreeRoot is BeaconBlock's full tree-hash, including its signature —
// distinct from the truncated identity hash used for the block identifier
// (see DeriveHeader), which goes through BeaconBlockHeader instead.
func (b *BeaconBlock) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	bodyRoot, err := b.Body.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(b.Slot)),
		ssz.H256(b.PreviousBlockRoot),
		ssz.H256(b.StateRoot),
		bodyRoot,
		ssz.Merkleize(h, ssz.Pack(b.Signature[:]), 0),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

// DeriveHeader implements spec §4.5: given a block and an
// externally-computed post-state root, produce the BeaconBlockHeader that
// identifies it, with block_body_root = tree_hash(block.body) and a zero
// signature.
func DeriveHeader(h ssz.Hasher, block *BeaconBlock, stateRoot H256) (*BeaconBlockHeader, error) {
	bodyRoot, err := block.Body.HashTreeRoot(h)
	if err != nil {
		return nil, err
	}
	return &BeaconBlockHeader{
		Slot:              block.Slot,
		PreviousBlockRoot: block.PreviousBlockRoot,
		StateRoot:         stateRoot,
		BlockBodyRoot:     bodyRoot,
		Signature:         Signature{},
	}, nil
}

// BlockID is the canonical block identifier: tree_hash(header), with the
// header's signature (always zero) truncated from the pre-image per
// spec §4.4/§4.5.
func BlockID(h ssz.Hasher, header *BeaconBlockHeader) (H256, error) {
	return header.HashTreeRoot(h)
}
