package types

import "github.com/lumenforge/beacon/ssz"

const (
	limitProposerSlashings = 16
	limitAttesterSlashings = 2
	limitAttestations      = 128
	limitDeposits          = 16
	limitVoluntaryExits    = 16
	limitTransfers         = 16
)

// bodyFixedLen is RandaoReveal + Eth1Data inline, followed by one 4-byte
// offset per list field (spec §4.2's container-encoding rule).
const bodyFixedLen = sizeH768 + eth1DataSize + 6*ssz.OffsetBytes

// encodeFixedList concatenates each element's fixed-size encoding with no
// offset table (spec §4.2 "Dynamic list of fixed-size T").
func encodeFixedList[T interface{ MarshalSSZTo([]byte) ([]byte, error) }](dst []byte, items []T) ([]byte, error) {
	var err error
	for i := range items {
		if dst, err = items[i].MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// encodeVariableList writes an offset table (one 4-byte offset per
// element, relative to the start of this list's own payload) followed by
// each element's encoding (spec §4.2 "Dynamic list of variable-size T").
func encodeVariableList[T interface {
	MarshalSSZTo([]byte) ([]byte, error)
	SizeSSZ() int
}](dst []byte, items []T) ([]byte, error) {
	tableLen := ssz.OffsetBytes * len(items)
	cursor := tableLen
	for i := range items {
		dst = ssz.WriteOffset(dst, cursor)
		cursor += items[i].SizeSSZ()
	}
	var err error
	for i := range items {
		if dst, err = items[i].MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (b *BeaconBlockBody) SizeSSZ() int {
	total := bodyFixedLen
	for i := range b.ProposerSlashings {
		total += b.ProposerSlashings[i].SizeSSZ()
	}
	total += ssz.OffsetBytes * len(b.AttesterSlashings)
	for i := range b.AttesterSlashings {
		total += b.AttesterSlashings[i].SizeSSZ()
	}
	total += ssz.OffsetBytes * len(b.Attestations)
	for i := range b.Attestations {
		total += b.Attestations[i].SizeSSZ()
	}
	for i := range b.Deposits {
		total += b.Deposits[i].SizeSSZ()
	}
	for i := range b.VoluntaryExits {
		total += b.VoluntaryExits[i].SizeSSZ()
	}
	for i := range b.Transfers {
		total += b.Transfers[i].SizeSSZ()
	}
	return total
}

func (b *BeaconBlockBody) MarshalSSZ() ([]byte, error) {
	return b.MarshalSSZTo(make([]byte, 0, b.SizeSSZ()))
}

func (b *BeaconBlockBody) MarshalSSZTo(dst []byte) ([]byte, error) {
	proposerSlashingsLen := 0
	for i := range b.ProposerSlashings {
		proposerSlashingsLen += b.ProposerSlashings[i].SizeSSZ()
	}
	attesterSlashingsLen := ssz.OffsetBytes * len(b.AttesterSlashings)
	for i := range b.AttesterSlashings {
		attesterSlashingsLen += b.AttesterSlashings[i].SizeSSZ()
	}
	attestationsLen := ssz.OffsetBytes * len(b.Attestations)
	for i := range b.Attestations {
		attestationsLen += b.Attestations[i].SizeSSZ()
	}
	depositsLen := 0
	for i := range b.Deposits {
		depositsLen += b.Deposits[i].SizeSSZ()
	}
	voluntaryExitsLen := 0
	for i := range b.VoluntaryExits {
		voluntaryExitsLen += b.VoluntaryExits[i].SizeSSZ()
	}

	dst = append(dst, b.RandaoReveal[:]...)
	var err error
	if dst, err = b.Eth1Data.MarshalSSZTo(dst); err != nil {
		return nil, err
	}

	cursor := bodyFixedLen
	dst = ssz.WriteOffset(dst, cursor)
	cursor += proposerSlashingsLen
	dst = ssz.WriteOffset(dst, cursor)
	cursor += attesterSlashingsLen
	dst = ssz.WriteOffset(dst, cursor)
	cursor += attestationsLen
	dst = ssz.WriteOffset(dst, cursor)
	cursor += depositsLen
	dst = ssz.WriteOffset(dst, cursor)
	cursor += voluntaryExitsLen
	dst = ssz.WriteOffset(dst, cursor)

	if dst, err = encodeFixedList(dst, b.ProposerSlashings); err != nil {
		return nil, err
	}
	if dst, err = encodeVariableList(dst, b.AttesterSlashings); err != nil {
		return nil, err
	}
	if dst, err = encodeVariableList(dst, b.Attestations); err != nil {
		return nil, err
	}
	if dst, err = encodeFixedList(dst, b.Deposits); err != nil {
		return nil, err
	}
	if dst, err = encodeFixedList(dst, b.VoluntaryExits); err != nil {
		return nil, err
	}
	if dst, err = encodeFixedList(dst, b.Transfers); err != nil {
		return nil, err
	}
	return dst, nil
}

func (b *BeaconBlockBody) UnmarshalSSZ(buf []byte) error {
	if len(buf) < bodyFixedLen {
		return ssz.ErrInvalidLength
	}
	copy(b.RandaoReveal[:], buf[:sizeH768])
	if err := b.Eth1Data.UnmarshalSSZ(buf[sizeH768 : sizeH768+eth1DataSize]); err != nil {
		return err
	}

	offBase := sizeH768 + eth1DataSize
	var offs [6]uint64
	for i := 0; i < 6; i++ {
		offs[i] = ssz.ReadOffset(buf[offBase+i*4 : offBase+i*4+4])
	}
	if err := ssz.ValidateOffsets(len(buf), bodyFixedLen, offs[:]); err != nil {
		return err
	}

	regions := [6][]byte{
		buf[offs[0]:offs[1]],
		buf[offs[1]:offs[2]],
		buf[offs[2]:offs[3]],
		buf[offs[3]:offs[4]],
		buf[offs[4]:offs[5]],
		buf[offs[5]:],
	}

	var err error
	if b.ProposerSlashings, err = decodeFixedList(regions[0], proposerSlashingSize, func() *ProposerSlashing { return &ProposerSlashing{} }); err != nil {
		return err
	}
	if b.AttesterSlashings, err = decodeVariableList(regions[1], func() *AttesterSlashing { return &AttesterSlashing{} }); err != nil {
		return err
	}
	if b.Attestations, err = decodeVariableList(regions[2], func() *Attestation { return &Attestation{} }); err != nil {
		return err
	}
	if b.Deposits, err = decodeFixedList(regions[3], depositSize, func() *Deposit { return &Deposit{} }); err != nil {
		return err
	}
	if b.VoluntaryExits, err = decodeFixedList(regions[4], voluntaryExitSize, func() *VoluntaryExit { return &VoluntaryExit{} }); err != nil {
		return err
	}
	if b.Transfers, err = decodeFixedList(regions[5], transferSize, func() *Transfer { return &Transfer{} }); err != nil {
		return err
	}
	return nil
}

func decodeFixedList[T interface{ UnmarshalSSZ([]byte) error }](region []byte, elemSize int, newElem func() T) ([]T, error) {
	if elemSize == 0 {
		if len(region) != 0 {
			return nil, ssz.ErrIncorrectSize
		}
		return nil, nil
	}
	if len(region)%elemSize != 0 {
		return nil, ssz.ErrIncorrectSize
	}
	n := len(region) / elemSize
	out := make([]T, n)
	for i := 0; i < n; i++ {
		e := newElem()
		if err := e.UnmarshalSSZ(region[i*elemSize : (i+1)*elemSize]); err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeVariableList[T interface{ UnmarshalSSZ([]byte) error }](region []byte, newElem func() T) ([]T, error) {
	if len(region) == 0 {
		return nil, nil
	}
	if len(region) < ssz.OffsetBytes {
		return nil, ssz.ErrIncorrectSize
	}
	first := ssz.ReadOffset(region[:ssz.OffsetBytes])
	if first%ssz.OffsetBytes != 0 {
		return nil, ssz.ErrInvalidOffset
	}
	n := int(first / ssz.OffsetBytes)
	offs := make([]uint64, n)
	for i := 0; i < n; i++ {
		offs[i] = ssz.ReadOffset(region[i*ssz.OffsetBytes : i*ssz.OffsetBytes+4])
	}
	if err := ssz.ValidateOffsets(len(region), n*ssz.OffsetBytes, offs); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		end := uint64(len(region))
		if i+1 < n {
			end = offs[i+1]
		}
		e := newElem()
		if err := e.UnmarshalSSZ(region[offs[i]:end]); err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (b *BeaconBlockBody) HashTreeRoot(h ssz.Hasher) (ssz.H256, error) {
	randaoRoot := ssz.Merkleize(h, ssz.Pack(b.RandaoReveal[:]), 0)
	eth1Root, err := b.Eth1Data.HashTreeRoot(h)
	if err != nil {
		return ssz.H256{}, err
	}

	proposerSlashingsRoot, err := listRoot(h, b.ProposerSlashings, limitProposerSlashings)
	if err != nil {
		return ssz.H256{}, err
	}
	attesterSlashingsRoot, err := listRoot(h, b.AttesterSlashings, limitAttesterSlashings)
	if err != nil {
		return ssz.H256{}, err
	}
	attestationsRoot, err := listRoot(h, b.Attestations, limitAttestations)
	if err != nil {
		return ssz.H256{}, err
	}
	depositsRoot, err := listRoot(h, b.Deposits, limitDeposits)
	if err != nil {
		return ssz.H256{}, err
	}
	voluntaryExitsRoot, err := listRoot(h, b.VoluntaryExits, limitVoluntaryExits)
	if err != nil {
		return ssz.H256{}, err
	}
	transfersRoot, err := listRoot(h, b.Transfers, limitTransfers)
	if err != nil {
		return ssz.H256{}, err
	}

	chunks := []ssz.H256{
		randaoRoot, eth1Root,
		proposerSlashingsRoot, attesterSlashingsRoot, attestationsRoot,
		depositsRoot, voluntaryExitsRoot, transfersRoot,
	}
	return ssz.Merkleize(h, chunks, 0), nil
}

func listRoot[T interface {
	HashTreeRoot(ssz.Hasher) (ssz.H256, error)
}](h ssz.Hasher, items []T, limit int) (ssz.H256, error) {
	elemRoots := make([]ssz.H256, len(items))
	for i := range items {
		r, err := items[i].HashTreeRoot(h)
		if err != nil {
			return ssz.H256{}, err
		}
		elemRoots[i] = r
	}
	root := ssz.Merkleize(h, elemRoots, limit)
	return ssz.MixInLength(h, root, uint64(len(items))), nil
}
