package ssz

import (
	fastssz "github.com/ferranbt/fastssz"
)

// Marshaler is implemented by every container type in package types
// (Bitlist has MarshalSSZTo and SizeSSZ but no MarshalSSZ). The method set mirrors
// the one fastssz's sszgen emits, so hand-written containers and generated
// ones are interchangeable.
type Marshaler interface {
	MarshalSSZTo(dst []byte) ([]byte, error)
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by every SSZ value type that can be decoded
// from its wire form.
type Unmarshaler interface {
	UnmarshalSSZ(buf []byte) error
}

// HashRoot is implemented by every container type in package types.
// Bitlist.HashTreeRoot returns the root without an error and so does not
// satisfy it.
type HashRoot interface {
	HashTreeRoot(h Hasher) (H256, error)
}

// WriteUint64 appends the little-endian encoding of v to dst.
func WriteUint64(dst []byte, v uint64) []byte {
	return fastssz.MarshalUint64(dst, v)
}

// ReadUint64 decodes a little-endian uint64 from the first 8 bytes of src.
// Callers must ensure len(src) >= 8.
func ReadUint64(src []byte) uint64 {
	return fastssz.UnmarshallUint64(src)
}

// WriteOffset appends a 4-byte little-endian offset to dst.
func WriteOffset(dst []byte, offset int) []byte {
	return fastssz.WriteOffset(dst, offset)
}

// ReadOffset decodes a 4-byte little-endian offset from the first 4 bytes
// of src. Callers must ensure len(src) >= 4.
func ReadOffset(src []byte) uint64 {
	return fastssz.ReadOffset(src)
}

// ExtendByteSlice grows b to at least size bytes, preserving its contents,
// matching fastssz's buffer-growth helper used by generated MarshalSSZTo
// methods.
func ExtendByteSlice(b []byte, size int) []byte {
	return fastssz.ExtendByteSlice(b, size)
}

// ValidateOffsets checks that a decoded offset table is well-formed per
// spec §4.3: the first offset must equal fixedPrefix, the byte length of
// the fixed part including the offset table itself, offsets must be
// monotonically non-decreasing, and the last offset must not exceed the
// buffer length.
func ValidateOffsets(bufLen int, fixedPrefix int, offsets []uint64) error {
	if len(offsets) == 0 {
		return nil
	}
	expectedFirst := uint64(fixedPrefix)
	if offsets[0] != expectedFirst {
		return ErrInvalidOffset
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return ErrInvalidOffset
		}
	}
	if offsets[len(offsets)-1] > uint64(bufLen) {
		return ErrIncorrectSize
	}
	return nil
}
