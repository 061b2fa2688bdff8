package ssz

import "encoding/binary"

// BytesPerChunk is the width of a Merkle tree leaf per spec §4.4.
const BytesPerChunk = 32

// H256 is a 32-byte chunk: the tree-hasher's leaf type and the wire form of
// the H256 primitive value type.
type H256 [32]byte

// Hasher is the injectable cryptographic capability spec §4.4 requires:
// H(a,b) is a 32-byte hash of the 64-byte concatenation a‖b. The reference
// implementation is Keccak-256; any 2-to-1 compression function can be
// substituted (e.g. for test vectors pinned to a different hash).
type Hasher interface {
	HashNodes(a, b H256) H256
}

// zeroHashCache.levels[i] is the Merkle root of an all-zero subtree of
// height i for one Hasher, computed lazily. Merkleize builds a fresh cache
// on each call and takes only the leaf-level zero chunk from it; padding
// above the leaves is hashed pair by pair like any other node.
type zeroHashCache struct {
	h      Hasher
	levels []H256
}

func newZeroHashCache(h Hasher) *zeroHashCache {
	return &zeroHashCache{h: h, levels: []H256{{}}}
}

func (z *zeroHashCache) at(height int) H256 {
	for len(z.levels) <= height {
		prev := z.levels[len(z.levels)-1]
		z.levels = append(z.levels, z.h.HashNodes(prev, prev))
	}
	return z.levels[height]
}

// nextPowerOfTwo returns the smallest power of two >= x, with
// nextPowerOfTwo(0) == 1.
func nextPowerOfTwo(x int) int {
	if x <= 1 {
		return 1
	}
	n := x - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

func log2(width int) int {
	n := 0
	for width > 1 {
		width >>= 1
		n++
	}
	return n
}

// Merkleize reduces a chunk sequence to a single 32-byte root per spec
// §4.4: pad to the next power of two (or to limit, if given and larger —
// used for lists with a fixed capacity), then pairwise-hash until one root
// remains. An empty sequence with no limit hashes to the all-zero chunk.
func Merkleize(h Hasher, chunks []H256, limit int) H256 {
	n := len(chunks)
	width := nextPowerOfTwo(n)
	if limit > 0 {
		if limit < n {
			limit = n
		}
		width = nextPowerOfTwo(limit)
	}
	if width == 1 {
		if n == 0 {
			return H256{}
		}
		return chunks[0]
	}

	zc := newZeroHashCache(h)
	height := log2(width)

	level := make([]H256, width)
	copy(level, chunks)
	for i := n; i < width; i++ {
		level[i] = zc.at(0)
	}

	for step := 0; step < height; step++ {
		next := make([]H256, len(level)/2)
		for i := range next {
			next[i] = h.HashNodes(level[i*2], level[i*2+1])
		}
		level = next
	}
	return level[0]
}

// MixInLength implements spec §4.4's list-length mixing:
// H(merkle_root_of_elements, little_endian(length, 32)).
func MixInLength(h Hasher, root H256, length uint64) H256 {
	var lenChunk H256
	binary.LittleEndian.PutUint64(lenChunk[:8], length)
	return h.HashNodes(root, lenChunk)
}

// Pack splits data into zero-padded 32-byte chunks per spec §4.4's
// "Basic types"/"byte arrays" chunking rule. An empty input yields a
// single zero chunk so Merkleize always has at least one leaf to pad from.
func Pack(data []byte) []H256 {
	if len(data) == 0 {
		return []H256{{}}
	}
	n := (len(data) + BytesPerChunk - 1) / BytesPerChunk
	chunks := make([]H256, n)
	for i := 0; i < n; i++ {
		copy(chunks[i][:], data[i*BytesPerChunk:min(len(data), (i+1)*BytesPerChunk)])
	}
	return chunks
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// HashTreeRootUint64 is the chunk form of a bare uint64 value: little-endian
// bytes, zero-padded to one 32-byte chunk.
func HashTreeRootUint64(v uint64) H256 {
	var c H256
	binary.LittleEndian.PutUint64(c[:8], v)
	return c
}
