package types

import "github.com/lumenforge/beacon/ssz"

//go:generate go run github.com/ferranbt/fastssz/sszgen --path=. --objs=Checkpoint,Eth1Data,SignedBeaconBlockHeader,ProposerSlashing,AttestationData,IndexedAttestation,AttesterSlashing,Attestation,DepositData,Deposit,VoluntaryExit,Transfer,BeaconBlockBody,BeaconBlock,BeaconBlockHeader

// SSZ containers for the beacon chain consensus core (spec §3). Field order
// is declaration order and is load-bearing for encoding; it must not be
// reordered without also regenerating every MarshalSSZ/UnmarshalSSZ pair.

const depositProofLen = 33

// Checkpoint identifies a justified or finalized epoch boundary: any value
// exposing Epoch() (spec §3 "FFG Checkpoint (abstract capability)").
type Checkpoint struct {
	CPEpoch Epoch `ssz-name:"epoch"`
	Root    H256  `ssz-size:"32"`
}

// Epoch implements consensus.Checkpoint.
func (c Checkpoint) Epoch() uint64 { return uint64(c.CPEpoch) }

// Eth1Data is the eth1 deposit-contract snapshot a proposer includes,
// supplementing the distilled spec per SPEC_FULL.md's container layout
// table (fixed-size: two H256 and a u64).
type Eth1Data struct {
	DepositRoot  H256 `ssz-size:"32"`
	DepositCount uint64
	BlockHash    H256 `ssz-size:"32"`
}

// SignedBeaconBlockHeader pairs a header with its signature; used inside
// ProposerSlashing to reference two conflicting proposals.
type SignedBeaconBlockHeader struct {
	Header    BeaconBlockHeader
	Signature Signature `ssz-size:"96"`
}

// ProposerSlashing is evidence of a proposer signing two headers for the
// same slot.
type ProposerSlashing struct {
	ProposerIndex uint64
	Header1       SignedBeaconBlockHeader
	Header2       SignedBeaconBlockHeader
}

// AttestationData describes what a validator is attesting to.
type AttestationData struct {
	Slot            Slot
	Index           uint64
	BeaconBlockRoot H256 `ssz-size:"32"`
	Source          Checkpoint
	Target          Checkpoint
}

// IndexedAttestation is an attestation resolved to the concrete validator
// indices that signed it — the form the Registry interface reasons about
// when computing attesting_target_balance.
type IndexedAttestation struct {
	AttestingIndices []uint64 `ssz-max:"2048"`
	Data             AttestationData
	Signature        Signature `ssz-size:"96"`
}

// AttesterSlashing is evidence of two conflicting indexed attestations by
// an overlapping validator set.
type AttesterSlashing struct {
	Attestation1 IndexedAttestation
	Attestation2 IndexedAttestation
}

// Attestation is the on-the-wire aggregate form: an AggregationBits bitlist
// naming which committee members signed, plus one aggregate signature.
type Attestation struct {
	AggregationBits *ssz.Bitlist `ssz:"bitlist" ssz-max:"2048"`
	Data            AttestationData
	Signature       Signature `ssz-size:"96"`
}

// DepositData is the deposit-contract log entry a Deposit proves inclusion
// of.
type DepositData struct {
	Pubkey                BLSPubkey `ssz-size:"48"`
	WithdrawalCredentials H256      `ssz-size:"32"`
	Amount                uint64
	Signature             Signature `ssz-size:"96"`
}

// Deposit carries a Merkle inclusion Proof (fixed-length vector of H256,
// exercising spec §4.1's fixed-vector-of-fixed-T rule independent of any
// list) alongside the deposit log entry.
type Deposit struct {
	Proof [depositProofLen]H256 `ssz-size:"33,32"`
	Data  DepositData
}

// VoluntaryExit signals a validator's voluntary withdrawal from the active
// set.
type VoluntaryExit struct {
	ExitEpoch      Epoch
	ValidatorIndex ValidatorIndex
	Signature      Signature `ssz-size:"96"`
}

// Transfer moves a balance between two validator accounts directly
// (pre-withdrawal-credentials transfer mechanism, carried over from the
// original source for completeness).
type Transfer struct {
	Sender    ValidatorIndex
	Recipient ValidatorIndex
	Amount    uint64
	Fee       uint64
	Slot      Slot
	Pubkey    BLSPubkey `ssz-size:"48"`
	Signature Signature `ssz-size:"96"`
}

// BeaconBlockBody is the variable-length payload of a BeaconBlock. All
// eight fields are present regardless of whether any slashing/exit/transfer
// is included: RandaoReveal and Eth1Data are fixed-size, and the other six
// are lists (possibly empty).
type BeaconBlockBody struct {
	RandaoReveal      H768 `ssz-size:"96"`
	Eth1Data          Eth1Data
	ProposerSlashings []*ProposerSlashing `ssz-max:"16"`
	AttesterSlashings []*AttesterSlashing `ssz-max:"2"`
	Attestations      []*Attestation      `ssz-max:"128"`
	Deposits          []*Deposit          `ssz-max:"16"`
	VoluntaryExits    []*VoluntaryExit    `ssz-max:"16"`
	Transfers         []*Transfer         `ssz-max:"16"`
}

// BeaconBlock is the full, signed proposal (spec §3). Signature is
// truncated when the block is hashed for its own identity — see
// DeriveHeader and BlockID.
type BeaconBlock struct {
	Slot              Slot
	PreviousBlockRoot H256 `ssz-size:"32"`
	StateRoot         H256 `ssz-size:"32"`
	Body              BeaconBlockBody
	Signature         Signature `ssz-size:"96"`
}

// BeaconBlockHeader is the fixed-size summary of a BeaconBlock used as its
// on-chain identifier (spec §4.5). Signature is truncated for identity
// hashing, same as BeaconBlock.
type BeaconBlockHeader struct {
	Slot              Slot
	PreviousBlockRoot H256 `ssz-size:"32"`
	StateRoot         H256 `ssz-size:"32"`
	BlockBodyRoot     H256 `ssz-size:"32"`
	Signature         Signature `ssz-size:"96"`
}
