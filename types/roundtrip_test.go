package types

import (
	"bytes"
	"testing"
)

// sszValue is the common shape every hand-written container in this
// package implements; used here purely to drive the round-trip law
// (spec §8: decode(encode(v)) == v) across containers that aren't already
// covered by a dedicated reference-vector test.
type sszValue interface {
	MarshalSSZ() ([]byte, error)
	UnmarshalSSZ([]byte) error
}

func TestContainerRoundTrips(t *testing.T) {
	cases := []struct {
		name  string
		value sszValue
		blank sszValue
	}{
		{"Checkpoint", checkpointPtr(testCheckpoint(5, 0x01)), &Checkpoint{}},
		{"Eth1Data", eth1DataPtr(), &Eth1Data{}},
		{"SignedBeaconBlockHeader", signedHeaderPtr(testSignedHeader(0x02)), &SignedBeaconBlockHeader{}},
		{"AttestationData", attestationDataPtr(testAttestationData(0x03)), &AttestationData{}},
		{"IndexedAttestation", indexedAttestationPtr(testIndexedAttestation(0x04, 7, 8, 9)), &IndexedAttestation{}},
		{"ProposerSlashing", proposerSlashingPtr(), &ProposerSlashing{}},
		{"Deposit", depositPtr(), &Deposit{}},
		{"VoluntaryExit", voluntaryExitPtr(), &VoluntaryExit{}},
		{"Transfer", transferPtr(), &Transfer{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := tc.value.MarshalSSZ()
			if err != nil {
				t.Fatalf("MarshalSSZ: %v", err)
			}
			if err := tc.blank.UnmarshalSSZ(encoded); err != nil {
				t.Fatalf("UnmarshalSSZ: %v", err)
			}
			reencoded, err := tc.blank.MarshalSSZ()
			if err != nil {
				t.Fatalf("re-MarshalSSZ: %v", err)
			}
			if !bytes.Equal(encoded, reencoded) {
				t.Fatalf("round-trip mismatch:\n original = %x\nre-marshaled = %x", encoded, reencoded)
			}
		})
	}
}

func checkpointPtr(c Checkpoint) *Checkpoint { return &c }

func eth1DataPtr() *Eth1Data {
	var depositRoot, blockHash H256
	copy(depositRoot[:], fillBytes(32, 0x05))
	copy(blockHash[:], fillBytes(32, 0x06))
	return &Eth1Data{DepositRoot: depositRoot, DepositCount: 42, BlockHash: blockHash}
}

func signedHeaderPtr(h SignedBeaconBlockHeader) *SignedBeaconBlockHeader { return &h }

func attestationDataPtr(d AttestationData) *AttestationData { return &d }

func indexedAttestationPtr(a IndexedAttestation) *IndexedAttestation { return &a }

func proposerSlashingPtr() *ProposerSlashing {
	return &ProposerSlashing{
		ProposerIndex: 11,
		Header1:       testSignedHeader(0x07),
		Header2:       testSignedHeader(0x08),
	}
}

func depositPtr() *Deposit {
	var proof [depositProofLen]H256
	for i := range proof {
		copy(proof[i][:], fillBytes(32, byte(i)+0x09))
	}
	var pubkey BLSPubkey
	copy(pubkey[:], fillBytes(48, 0x0a))
	var withdrawal H256
	copy(withdrawal[:], fillBytes(32, 0x0b))
	var sig Signature
	copy(sig[:], fillBytes(96, 0x0c))
	return &Deposit{
		Proof: proof,
		Data: DepositData{
			Pubkey:                pubkey,
			WithdrawalCredentials: withdrawal,
			Amount:                32000000000,
			Signature:             sig,
		},
	}
}

func voluntaryExitPtr() *VoluntaryExit {
	var sig Signature
	copy(sig[:], fillBytes(96, 0x0d))
	return &VoluntaryExit{ExitEpoch: 3, ValidatorIndex: 21, Signature: sig}
}

func transferPtr() *Transfer {
	var pubkey BLSPubkey
	copy(pubkey[:], fillBytes(48, 0x0e))
	var sig Signature
	copy(sig[:], fillBytes(96, 0x0f))
	return &Transfer{Sender: 4, Recipient: 5, Amount: 600, Fee: 2, Slot: 100, Pubkey: pubkey, Signature: sig}
}
