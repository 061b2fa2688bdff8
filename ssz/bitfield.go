package ssz

import (
	"github.com/OffchainLabs/go-bitfield"
)

// Bitlist is an SSZ bitlist<N>: a variable-length, length-delimited bit
// sequence (spec §4.1's "Dynamic list" rule specialized to bool). Wire
// representation and chunking are delegated to go-bitfield, which already
// implements the delimiter-bit convention the teacher's consensus package
// relies on for vote tracking.
type Bitlist struct {
	limit uint64
	bits  bitfield.Bitlist
}

// NewBitlist allocates an empty bitlist capable of holding up to limit
// bits.
func NewBitlist(limit uint64) *Bitlist {
	return &Bitlist{limit: limit, bits: bitfield.NewBitlist(0)}
}

// BitlistFromBits wraps an already-encoded (delimiter included) bitlist.
func BitlistFromBits(limit uint64, raw []byte) *Bitlist {
	return &Bitlist{limit: limit, bits: bitfield.Bitlist(raw)}
}

func (b *Bitlist) SetBitAt(i uint64, v bool) {
	for b.bits.Len() <= i {
		grown := bitfield.NewBitlist(b.bits.Len() + 1)
		for j := uint64(0); j < b.bits.Len(); j++ {
			grown.SetBitAt(j, b.bits.BitAt(j))
		}
		b.bits = grown
	}
	b.bits.SetBitAt(i, v)
}

func (b *Bitlist) BitAt(i uint64) bool { return b.bits.BitAt(i) }
func (b *Bitlist) Len() uint64         { return b.bits.Len() }
func (b *Bitlist) Bytes() []byte       { return b.bits.Bytes() }
func (b *Bitlist) Count() uint64       { return b.bits.Count() }

// MarshalSSZTo appends the wire encoding (raw delimiter-terminated bytes).
func (b *Bitlist) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, []byte(b.bits)...), nil
}

// SizeSSZ is the encoded byte length, including the delimiter bit's byte.
func (b *Bitlist) SizeSSZ() int { return len(b.bits) }

// UnmarshalSSZ parses a raw delimiter-terminated bitlist.
func (b *Bitlist) UnmarshalSSZ(buf []byte) error {
	if len(buf) == 0 {
		return ErrInvalidLength
	}
	b.bits = bitfield.Bitlist(append([]byte(nil), buf...))
	return nil
}

// HashTreeRoot implements spec §4.4 for bitlists: pack the raw bits
// (without the delimiter) into chunks, merkleize against a capacity-derived
// limit, then mix in the true bit length.
func (b *Bitlist) HashTreeRoot(h Hasher) H256 {
	length := b.bits.Len()
	packed := packBits(b.bits, length)
	limitChunks := (b.limit + 255) / 256
	if limitChunks == 0 {
		limitChunks = 1
	}
	root := Merkleize(h, packed, int(limitChunks))
	return MixInLength(h, root, length)
}

// packBits extracts the first n data bits (excluding the delimiter bit)
// from a go-bitfield Bitlist's raw byte form and repacks them LSB-first
// into 32-byte chunks per spec §4.4.
func packBits(bl bitfield.Bitlist, n uint64) []H256 {
	byteLen := (n + 7) / 8
	data := make([]byte, byteLen)
	for i := uint64(0); i < n; i++ {
		if bl.BitAt(i) {
			data[i/8] |= 1 << (i % 8)
		}
	}
	return Pack(data)
}
