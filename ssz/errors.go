// Package ssz implements the Simple Serialize codec and Merkle tree-hasher
// used by the beacon chain data model: a typed fixed-or-variable size
// system, a byte-exact encoder/decoder, and an injectable-hasher
// Merkleization scheme.
package ssz

import "errors"

var (
	// ErrInvalidLength is returned when a declared fixed length does not
	// match the buffer being decoded.
	ErrInvalidLength = errors.New("ssz: invalid length")
	// ErrIncorrectSize is returned when an offset is out of range or a
	// variable-size region is too short.
	ErrIncorrectSize = errors.New("ssz: incorrect size")
	// ErrInvalidOffset is returned when offsets are not monotonically
	// non-decreasing, or the first offset does not equal the offset-table
	// byte length.
	ErrInvalidOffset = errors.New("ssz: invalid offset")
	// ErrCorrupted wraps any primitive decode failure.
	ErrCorrupted = errors.New("ssz: corrupted")
)
