package ssz

import "github.com/ethereum/go-ethereum/crypto"

// Keccak256Hasher is the reference Hasher capability named in spec §4.4:
// H(a,b) = Keccak256(a‖b). It holds no state and is safe for concurrent use
// from multiple goroutines, matching the "pure function" concurrency
// guarantee of §5.
type Keccak256Hasher struct{}

// HashNodes implements Hasher.
func (Keccak256Hasher) HashNodes(a, b H256) H256 {
	return H256(crypto.Keccak256Hash(a[:], b[:]))
}

// DefaultHasher is the Keccak256Hasher used whenever a caller does not
// inject a different Hasher capability.
var DefaultHasher Hasher = Keccak256Hasher{}
