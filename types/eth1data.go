package types

import "github.com/lumenforge/beacon/ssz"

const eth1DataSize = sizeH256 + 8 + sizeH256

func (e *Eth1Data) SizeSSZ() int { return eth1DataSize }

func (e *Eth1Data) MarshalSSZ() ([]byte, error) {
	return e.MarshalSSZTo(make([]byte, 0, eth1DataSize))
}

func (e *Eth1Data) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, e.DepositRoot[:]...)
	dst = ssz.WriteUint64(dst, e.DepositCount)
	dst = append(dst, e.BlockHash[:]...)
	return dst, nil
}

func (e *Eth1Data) UnmarshalSSZ(buf []byte) error {
	if len(buf) != eth1DataSize {
		return ssz.ErrInvalidLength
	}
	copy(e.DepositRoot[:], buf[:sizeH256])
	e.DepositCount = ssz.ReadUint64(buf[sizeH256 : sizeH256+8])
	copy(e.BlockHash[:], buf[sizeH256+8:eth1DataSize])
	return nil
}

func (e *Eth1Data) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.H256(e.DepositRoot),
		ssz.HashTreeRootUint64(e.DepositCount),
		ssz.H256(e.BlockHash),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}
