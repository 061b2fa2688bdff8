package types

import "github.com/lumenforge/beacon/ssz"

// attestationDataSize: slot(8) + index(8) + beacon_block_root(32) +
// source(40) + target(40).
const attestationDataSize = 8 + 8 + sizeH256 + checkpointSize + checkpointSize

func (a *AttestationData) SizeSSZ() int { return attestationDataSize }

func (a *AttestationData) MarshalSSZ() ([]byte, error) {
	return a.MarshalSSZTo(make([]byte, 0, attestationDataSize))
}

func (a *AttestationData) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(a.Slot))
	dst = ssz.WriteUint64(dst, a.Index)
	dst = append(dst, a.BeaconBlockRoot[:]...)
	var err error
	if dst, err = a.Source.MarshalSSZTo(dst); err != nil {
		return nil, err
	}
	if dst, err = a.Target.MarshalSSZTo(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (a *AttestationData) UnmarshalSSZ(buf []byte) error {
	if len(buf) != attestationDataSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	a.Slot = Slot(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	a.Index = ssz.ReadUint64(buf[off : off+8])
	off += 8
	copy(a.BeaconBlockRoot[:], buf[off:off+sizeH256])
	off += sizeH256
	if err := a.Source.UnmarshalSSZ(buf[off : off+checkpointSize]); err != nil {
		return err
	}
	off += checkpointSize
	if err := a.Target.UnmarshalSSZ(buf[off : off+checkpointSize]); err != nil {
		return err
	}
	return nil
}

func (a *AttestationData) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	sourceRoot, err := a.Source.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	targetRoot, err := a.Target.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(a.Slot)),
		ssz.HashTreeRootUint64(a.Index),
		ssz.H256(a.BeaconBlockRoot),
		sourceRoot,
		targetRoot,
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

// depositDataSize: pubkey(48) + withdrawal_credentials(32) + amount(8) +
// signature(96).
const depositDataSize = sizeBLSPubkey + sizeH256 + 8 + sizeSignature

func (d *DepositData) SizeSSZ() int { return depositDataSize }

func (d *DepositData) MarshalSSZ() ([]byte, error) {
	return d.MarshalSSZTo(make([]byte, 0, depositDataSize))
}

func (d *DepositData) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = append(dst, d.Pubkey[:]...)
	dst = append(dst, d.WithdrawalCredentials[:]...)
	dst = ssz.WriteUint64(dst, d.Amount)
	dst = append(dst, d.Signature[:]...)
	return dst, nil
}

func (d *DepositData) UnmarshalSSZ(buf []byte) error {
	if len(buf) != depositDataSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	copy(d.Pubkey[:], buf[off:off+sizeBLSPubkey])
	off += sizeBLSPubkey
	copy(d.WithdrawalCredentials[:], buf[off:off+sizeH256])
	off += sizeH256
	d.Amount = ssz.ReadUint64(buf[off : off+8])
	off += 8
	copy(d.Signature[:], buf[off:off+sizeSignature])
	return nil
}

func (d *DepositData) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.Merkleize(h, ssz.Pack(d.Pubkey[:]), 0),
		ssz.H256(d.WithdrawalCredentials),
		ssz.HashTreeRootUint64(d.Amount),
		ssz.Merkleize(h, ssz.Pack(d.Signature[:]), 0),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

// depositSize: proof(33*32) + data(184).
const depositSize = depositProofLen*sizeH256 + depositDataSize

func (d *Deposit) SizeSSZ() int { return depositSize }

func (d *Deposit) MarshalSSZ() ([]byte, error) {
	return d.MarshalSSZTo(make([]byte, 0, depositSize))
}

func (d *Deposit) MarshalSSZTo(dst []byte) ([]byte, error) {
	for i := range d.Proof {
		dst = append(dst, d.Proof[i][:]...)
	}
	return d.Data.MarshalSSZTo(dst)
}

func (d *Deposit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != depositSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	for i := range d.Proof {
		copy(d.Proof[i][:], buf[off:off+sizeH256])
		off += sizeH256
	}
	return d.Data.UnmarshalSSZ(buf[off:])
}

func (d *Deposit) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	proofChunks := make([]ssz.H256, depositProofLen)
	for i := range d.Proof {
		proofChunks[i] = ssz.H256(d.Proof[i])
	}
	proofRoot := ssz.Merkleize(h, proofChunks, 0)
	dataRoot, err := d.Data.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	return ssz.Merkleize(h, []ssz.H256{proofRoot, dataRoot}, 0), nil
}

// voluntaryExitSize: epoch(8) + validator_index(8) + signature(96).
const voluntaryExitSize = 8 + 8 + sizeSignature

func (v *VoluntaryExit) SizeSSZ() int { return voluntaryExitSize }

func (v *VoluntaryExit) MarshalSSZ() ([]byte, error) {
	return v.MarshalSSZTo(make([]byte, 0, voluntaryExitSize))
}

func (v *VoluntaryExit) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(v.ExitEpoch))
	dst = ssz.WriteUint64(dst, uint64(v.ValidatorIndex))
	dst = append(dst, v.Signature[:]...)
	return dst, nil
}

func (v *VoluntaryExit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != voluntaryExitSize {
		return ssz.ErrInvalidLength
	}
	v.ExitEpoch = Epoch(ssz.ReadUint64(buf[:8]))
	v.ValidatorIndex = ValidatorIndex(ssz.ReadUint64(buf[8:16]))
	copy(v.Signature[:], buf[16:voluntaryExitSize])
	return nil
}

func (v *VoluntaryExit) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(v.ExitEpoch)),
		ssz.HashTreeRootUint64(uint64(v.ValidatorIndex)),
		ssz.Merkleize(h, ssz.Pack(v.Signature[:]), 0),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

// transferSize: sender(8)+recipient(8)+amount(8)+fee(8)+slot(8)+pubkey(48)+signature(96).
const transferSize = 8 + 8 + 8 + 8 + 8 + sizeBLSPubkey + sizeSignature

func (t *Transfer) SizeSSZ() int { return transferSize }

func (t *Transfer) MarshalSSZ() ([]byte, error) {
	return t.MarshalSSZTo(make([]byte, 0, transferSize))
}

func (t *Transfer) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, uint64(t.Sender))
	dst = ssz.WriteUint64(dst, uint64(t.Recipient))
	dst = ssz.WriteUint64(dst, t.Amount)
	dst = ssz.WriteUint64(dst, t.Fee)
	dst = ssz.WriteUint64(dst, uint64(t.Slot))
	dst = append(dst, t.Pubkey[:]...)
	dst = append(dst, t.Signature[:]...)
	return dst, nil
}

func (t *Transfer) UnmarshalSSZ(buf []byte) error {
	if len(buf) != transferSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	t.Sender = ValidatorIndex(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	t.Recipient = ValidatorIndex(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	t.Amount = ssz.ReadUint64(buf[off : off+8])
	off += 8
	t.Fee = ssz.ReadUint64(buf[off : off+8])
	off += 8
	t.Slot = Slot(ssz.ReadUint64(buf[off : off+8]))
	off += 8
	copy(t.Pubkey[:], buf[off:off+sizeBLSPubkey])
	off += sizeBLSPubkey
	copy(t.Signature[:], buf[off:off+sizeSignature])
	return nil
}

func (t *Transfer) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	chunks := []ssz.H256{
		ssz.HashTreeRootUint64(uint64(t.Sender)),
		ssz.HashTreeRootUint64(uint64(t.Recipient)),
		ssz.HashTreeRootUint64(t.Amount),
		ssz.HashTreeRootUint64(t.Fee),
		ssz.HashTreeRootUint64(uint64(t.Slot)),
		ssz.Merkleize(h, ssz.Pack(t.Pubkey[:]), 0),
		ssz.Merkleize(h, ssz.Pack(t.Signature[:]), 0),
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

// proposerSlashingSize: proposer_index(8) + 2*signed header(296).
const proposerSlashingSize = 8 + 2*signedBeaconBlockHeaderSize

func (p *ProposerSlashing) SizeSSZ() int { return proposerSlashingSize }

func (p *ProposerSlashing) MarshalSSZ() ([]byte, error) {
	return p.MarshalSSZTo(make([]byte, 0, proposerSlashingSize))
}

func (p *ProposerSlashing) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.WriteUint64(dst, p.ProposerIndex)
	var err error
	if dst, err = p.Header1.MarshalSSZTo(dst); err != nil {
		return nil, err
	}
	if dst, err = p.Header2.MarshalSSZTo(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (p *ProposerSlashing) UnmarshalSSZ(buf []byte) error {
	if len(buf) != proposerSlashingSize {
		return ssz.ErrInvalidLength
	}
	off := 0
	p.ProposerIndex = ssz.ReadUint64(buf[off : off+8])
	off += 8
	if err := p.Header1.UnmarshalSSZ(buf[off : off+signedBeaconBlockHeaderSize]); err != nil {
		return err
	}
	off += signedBeaconBlockHeaderSize
	return p.Header2.UnmarshalSSZ(buf[off : off+signedBeaconBlockHeaderSize])
}

func (p *ProposerSlashing) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	r1, err := p.Header1.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	r2, err := p.Header2.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}
	chunks := []ssz.H256{ssz.HashTreeRootUint64(p.ProposerIndex), r1, r2}
	return ssz.Merkleize(h, chunks, 0), nil
}
