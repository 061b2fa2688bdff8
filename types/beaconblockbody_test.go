package types

import (
	"bytes"
	"testing"

	"github.com/lumenforge/beacon/ssz"
)

func fillBytes(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func testCheckpoint(epoch uint64, seed byte) Checkpoint {
	var root H256
	copy(root[:], fillBytes(32, seed))
	return Checkpoint{CPEpoch: Epoch(epoch), Root: root}
}

func testAttestationData(seed byte) AttestationData {
	var root H256
	copy(root[:], fillBytes(32, seed))
	return AttestationData{
		Slot:            Slot(seed),
		Index:           uint64(seed),
		BeaconBlockRoot: root,
		Source:          testCheckpoint(1, seed+1),
		Target:          testCheckpoint(2, seed+2),
	}
}

func testSignedHeader(seed byte) SignedBeaconBlockHeader {
	var stateRoot, bodyRoot, prevRoot H256
	copy(stateRoot[:], fillBytes(32, seed))
	copy(bodyRoot[:], fillBytes(32, seed+1))
	copy(prevRoot[:], fillBytes(32, seed+2))
	var sig Signature
	copy(sig[:], fillBytes(96, seed+3))
	return SignedBeaconBlockHeader{
		Header: BeaconBlockHeader{
			Slot:              Slot(seed),
			PreviousBlockRoot: prevRoot,
			StateRoot:         stateRoot,
			BlockBodyRoot:     bodyRoot,
		},
		Signature: sig,
	}
}

func testIndexedAttestation(seed byte, indices ...uint64) IndexedAttestation {
	var sig Signature
	copy(sig[:], fillBytes(96, seed))
	return IndexedAttestation{
		AttestingIndices: indices,
		Data:             testAttestationData(seed),
		Signature:        sig,
	}
}

// populatedBody constructs a BeaconBlockBody with at least one element in
// every one of its six list fields, per the round-trip law every specified
// type must satisfy.
func populatedBody() *BeaconBlockBody {
	var randao H768
	copy(randao[:], fillBytes(96, 0x10))
	var depositRoot, blockHash H256
	copy(depositRoot[:], fillBytes(32, 0x20))
	copy(blockHash[:], fillBytes(32, 0x30))

	var proof [depositProofLen]H256
	for i := range proof {
		copy(proof[i][:], fillBytes(32, byte(i)))
	}
	var pubkey BLSPubkey
	copy(pubkey[:], fillBytes(48, 0x40))
	var depSig Signature
	copy(depSig[:], fillBytes(96, 0x41))

	bits := ssz.NewBitlist(8)
	bits.SetBitAt(0, true)
	bits.SetBitAt(2, true)

	var attSig, exitSig, xferSig Signature
	copy(attSig[:], fillBytes(96, 0x50))
	copy(exitSig[:], fillBytes(96, 0x60))
	copy(xferSig[:], fillBytes(96, 0x70))

	return &BeaconBlockBody{
		RandaoReveal: randao,
		Eth1Data: Eth1Data{
			DepositRoot:  depositRoot,
			DepositCount: 7,
			BlockHash:    blockHash,
		},
		ProposerSlashings: []*ProposerSlashing{
			{ProposerIndex: 3, Header1: testSignedHeader(1), Header2: testSignedHeader(2)},
		},
		AttesterSlashings: []*AttesterSlashing{
			{
				Attestation1: testIndexedAttestation(3, 1, 2, 3),
				Attestation2: testIndexedAttestation(4, 4, 5),
			},
		},
		Attestations: []*Attestation{
			{
				AggregationBits: bits,
				Data:            testAttestationData(5),
				Signature:       attSig,
			},
		},
		Deposits: []*Deposit{
			{
				Proof: proof,
				Data: DepositData{
					Pubkey:                pubkey,
					WithdrawalCredentials: blockHash,
					Amount:                32000000000,
					Signature:             depSig,
				},
			},
		},
		VoluntaryExits: []*VoluntaryExit{
			{ExitEpoch: 12, ValidatorIndex: 9, Signature: exitSig},
		},
		Transfers: []*Transfer{
			{Sender: 1, Recipient: 2, Amount: 500, Fee: 1, Slot: 99, Pubkey: pubkey, Signature: xferSig},
		},
	}
}

func TestBeaconBlockBodyRoundTrip(t *testing.T) {
	body := populatedBody()

	encoded, err := body.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if len(encoded) != body.SizeSSZ() {
		t.Fatalf("encoded length = %d, SizeSSZ() = %d", len(encoded), body.SizeSSZ())
	}

	var decoded BeaconBlockBody
	if err := decoded.UnmarshalSSZ(encoded); err != nil {
		t.Fatalf("UnmarshalSSZ: %v", err)
	}

	reencoded, err := decoded.MarshalSSZ()
	if err != nil {
		t.Fatalf("re-MarshalSSZ: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Fatalf("round-trip mismatch:\n original = %x\nre-marshaled = %x", encoded, reencoded)
	}

	if len(decoded.ProposerSlashings) != 1 || len(decoded.AttesterSlashings) != 1 ||
		len(decoded.Attestations) != 1 || len(decoded.Deposits) != 1 ||
		len(decoded.VoluntaryExits) != 1 || len(decoded.Transfers) != 1 {
		t.Fatalf("decoded list field counts mismatch: %+v", decoded)
	}
	if len(decoded.AttesterSlashings[0].Attestation1.AttestingIndices) != 3 {
		t.Fatalf("nested AttestingIndices lost in round-trip: %+v", decoded.AttesterSlashings[0].Attestation1)
	}
}

func TestBeaconBlockBodyHashTreeRootDeterministic(t *testing.T) {
	a := populatedBody()
	b := populatedBody()

	rootA, err := a.HashTreeRoot(ssz.DefaultHasher)
	if err != nil {
		t.Fatalf("HashTreeRoot(a): %v", err)
	}
	rootB, err := b.HashTreeRoot(ssz.DefaultHasher)
	if err != nil {
		t.Fatalf("HashTreeRoot(b): %v", err)
	}
	if rootA != rootB {
		t.Fatalf("HashTreeRoot not deterministic across identically-constructed bodies: %x != %x", rootA, rootB)
	}

	b.Transfers[0].Amount = 999
	rootC, err := b.HashTreeRoot(ssz.DefaultHasher)
	if err != nil {
		t.Fatalf("HashTreeRoot(mutated b): %v", err)
	}
	if rootA == rootC {
		t.Fatal("HashTreeRoot did not change after mutating a nested list element")
	}
}

func TestBeaconBlockBodyEmptyListsRoundTrip(t *testing.T) {
	body := &BeaconBlockBody{}
	encoded, err := body.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if len(encoded) != bodyFixedLen {
		t.Fatalf("encoded length = %d, want bodyFixedLen = %d", len(encoded), bodyFixedLen)
	}

	var decoded BeaconBlockBody
	if err := decoded.UnmarshalSSZ(encoded); err != nil {
		t.Fatalf("UnmarshalSSZ: %v", err)
	}
	if len(decoded.ProposerSlashings) != 0 || len(decoded.Attestations) != 0 {
		t.Fatalf("expected empty lists, got %+v", decoded)
	}

	if _, err := decoded.HashTreeRoot(ssz.DefaultHasher); err != nil {
		t.Fatalf("HashTreeRoot on empty body: %v", err)
	}
}
