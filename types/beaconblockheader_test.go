package types

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/lumenforge/beacon/ssz"
)

func mustDecodeHex(t *testing.T, s string) H256 {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode hex %q: %v", s, err)
	}
	var h H256
	copy(h[:], b)
	return h
}

func TestBeaconBlockHeaderEmptyReferenceVector(t *testing.T) {
	h := &BeaconBlockHeader{}

	encoded, err := h.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if len(encoded) != 200 {
		t.Fatalf("encoded length = %d, want 200", len(encoded))
	}
	if !bytes.Equal(encoded, make([]byte, 200)) {
		t.Fatalf("encoded bytes not all zero: %x", encoded)
	}

	root, err := h.HashTreeRoot(ssz.DefaultHasher)
	if err != nil {
		t.Fatalf("HashTreeRoot: %v", err)
	}
	want := mustDecodeHex(t, "e01003d72a0ae479feae271e10a0b0b1c6237ee968d3ee5a0699f1fb3998a633")
	if H256(root) != want {
		t.Fatalf("tree-hash = %x, want %x", root, want)
	}

	var decoded BeaconBlockHeader
	if err := decoded.UnmarshalSSZ(encoded); err != nil {
		t.Fatalf("UnmarshalSSZ: %v", err)
	}
	if decoded != *h {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", decoded, *h)
	}
}

func TestBeaconBlockHeaderPopulatedReferenceVector(t *testing.T) {
	h := &BeaconBlockHeader{
		Slot:          4294967296,
		StateRoot:     mustDecodeHex(t, "bdac85b271ed09d9a47a161395cd15d85eca25d9e3dd9e458c8cc08c80180273"),
		BlockBodyRoot: mustDecodeHex(t, "13f2001ff0ee4a528b3c43f63d70a997aefca990ed8eada2223ee6ec3807f7cc"),
	}

	root, err := h.HashTreeRoot(ssz.DefaultHasher)
	if err != nil {
		t.Fatalf("HashTreeRoot: %v", err)
	}
	want := mustDecodeHex(t, "da3c938fbc97b9ece3a23a2277eb864ad6173e21404e7d2861b7911e5e8b7252")
	if H256(root) != want {
		t.Fatalf("tree-hash = %x, want %x", root, want)
	}

	encoded, err := h.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	var decoded BeaconBlockHeader
	if err := decoded.UnmarshalSSZ(encoded); err != nil {
		t.Fatalf("UnmarshalSSZ: %v", err)
	}
	if decoded != *h {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", decoded, *h)
	}
}

type enumVariant string

const variantA enumVariant = "A"

func TestEnumCodecReferenceVector(t *testing.T) {
	codec := ssz.NewEnumCodec(map[byte]enumVariant{0: "unused0", 1: "unused1", 15: variantA})

	encoded, err := codec.Encode(variantA)
	if err != nil {
		t.Fatalf("Encode(A): %v", err)
	}
	if encoded != 0x0f {
		t.Fatalf("Encode(A) = %#x, want 0x0f", encoded)
	}

	decoded, err := codec.Decode(0x0f)
	if err != nil {
		t.Fatalf("Decode(0x0f): %v", err)
	}
	if decoded != variantA {
		t.Fatalf("Decode(0x0f) = %v, want %v", decoded, variantA)
	}

	if _, err := codec.Decode(0x02); err == nil {
		t.Fatal("Decode(0x02) on an undeclared index should error")
	}
}

func TestEncodeSortedUint32Fields(t *testing.T) {
	got := ssz.EncodeSortedUint32Fields(map[string]uint32{
		"b": 2,
		"a": 1,
		"c": 3,
	})
	want := []byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeSortedUint32Fields = %x, want %x", got, want)
	}
}
