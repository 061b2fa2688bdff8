package types

import "github.com/lumenforge/beacon/ssz"

const signedBeaconBlockHeaderSize = beaconBlockHeaderSize + sizeSignature

func (s *SignedBeaconBlockHeader) SizeSSZ() int { return signedBeaconBlockHeaderSize }

func (s *SignedBeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return s.MarshalSSZTo(make([]byte, 0, signedBeaconBlockHeaderSize))
}

func (s *SignedBeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst, err := s.Header.MarshalSSZTo(dst)
	if err != nil {
		return nil, err
	}
	dst = append(dst, s.Signature[:]...)
	return dst, nil
}

func (s *SignedBeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != signedBeaconBlockHeaderSize {
		return ssz.ErrInvalidLength
	}
	if err := s.Header.UnmarshalSSZ(buf[:beaconBlockHeaderSize]); err != nil {
		return err
	}
	copy(s.Signature[:], buf[beaconBlockHeaderSize:])
	return nil
}

func (s *SignedBeaconBlockHeader) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	headerRoot, err := s.Header.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	sigChunks := ssz.Pack(s.Signature[:])
	sigRoot := ssz.Merkleize(h, sigChunks, 0)
	return ssz.Merkleize(h, []ssz.H256{headerRoot, sigRoot}, 0), nil
}
