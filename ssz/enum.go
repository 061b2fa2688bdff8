package ssz

// EnumCodec implements the "union with explicit index" SSZ shape: each
// variant is tagged by a caller-chosen single byte rather than its
// declaration position, so indices may be sparse (spec §8 vector 3 declares
// only 0, 1, and 15).
type EnumCodec[T comparable] struct {
	byIndex map[byte]T
	byValue map[T]byte
}

// NewEnumCodec builds a codec from an explicit index -> variant table.
func NewEnumCodec[T comparable](table map[byte]T) *EnumCodec[T] {
	c := &EnumCodec[T]{
		byIndex: make(map[byte]T, len(table)),
		byValue: make(map[T]byte, len(table)),
	}
	for idx, v := range table {
		c.byIndex[idx] = v
		c.byValue[v] = idx
	}
	return c
}

// Encode returns the single tag byte for a declared variant.
func (c *EnumCodec[T]) Encode(v T) (byte, error) {
	idx, ok := c.byValue[v]
	if !ok {
		return 0, ErrCorrupted
	}
	return idx, nil
}

// Decode maps a tag byte back to its variant. An undeclared index is an
// error rather than a zero value, so callers cannot silently accept
// corrupted input.
func (c *EnumCodec[T]) Decode(tag byte) (T, error) {
	v, ok := c.byIndex[tag]
	if !ok {
		var zero T
		return zero, ErrCorrupted
	}
	return v, nil
}
