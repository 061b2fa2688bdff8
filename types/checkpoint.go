package types

import "github.com/lumenforge/beacon/ssz"

const checkpointSize = 8 + sizeH256

// SizeSSZ implements ssz.Marshaler.
func (c *Checkpoint) SizeSSZ() int { return checkpointSize }

// MarshalSSZ implements ssz.Marshaler.
func (c *Checkpoint) MarshalSSZ() ([]byte, error) {
	return c.MarshalSSZTo(make([]byte, 0, checkpointSize))
}

// MarshalSSZTo implements ssz.Marshaler.
func (c *Checkpoint) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(c.CPEpoch))
	dst = append(dst, c.Root[:]...)
	return dst, nil
}

// UnmarshalSSZ implements ssz.Unmarshaler.
func (c *Checkpoint) UnmarshalSSZ(buf []byte) error {
	if len(buf) != checkpointSize {
		return ssz.ErrInvalidLength
	}
	c.CPEpoch = Epoch(ssz.ReadUint64(buf[:8]))
	copy(c.Root[:], buf[8:checkpointSize])
	return nil
}

// HashTreeRoot implements ssz.HashRoot: two fixed-size fields, one chunk
// each, merkleized with no length mixing (spec §4.4).
func (c *Checkpoint) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(c.CPEpoch)),
		ssz.H256(c.Root),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}
