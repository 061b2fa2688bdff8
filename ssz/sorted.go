package ssz

import "sort"

// EncodeSortedUint32Fields implements a container variant whose field order
// is declared alphabetically by name rather than by struct declaration
// order, and whose per-field u32 values are big-endian (spec §8 vector 4:
// `{b, c, a}` all u32 with b=2, c=3, a=1 encodes as
// `00 00 00 01  00 00 00 02  00 00 00 03`, i.e. sorted-name order a,b,c
// with big-endian values — distinct from the little-endian rule normative
// containers use). Field values are passed as a name->value map precisely
// because the encoding order must not depend on map/struct iteration order
// of the caller.
func EncodeSortedUint32Fields(fields map[string]uint32) []byte {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]byte, 0, len(names)*4)
	for _, name := range names {
		var buf [4]byte
		v := fields[name]
		buf[0] = byte(v >> 24)
		buf[1] = byte(v >> 16)
		buf[2] = byte(v >> 8)
		buf[3] = byte(v)
		out = append(out, buf[:]...)
	}
	return out
}
