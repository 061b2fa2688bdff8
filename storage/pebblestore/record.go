package pebblestore

import (
	"encoding/binary"
	"fmt"

	"github.com/lumenforge/beacon/storage"
	"github.com/lumenforge/beacon/types"
)

// encodeRecord serializes a storage.Record to its on-disk form: a
// length-prefixed SSZ-encoded block, a length-prefixed raw state blob, an
// 8-byte depth, a 1-byte canonical flag, and a count-prefixed list of
// 32-byte child identifiers.
func encodeRecord(r *storage.Record) ([]byte, error) {
	blockBytes, err := r.Block.MarshalSSZ()
	if err != nil {
		return nil, fmt.Errorf("pebblestore: marshal block: %w", err)
	}

	buf := make([]byte, 0, 8+len(blockBytes)+8+len(r.StateRaw)+8+1+len(r.Children)*32)
	buf = appendUint64(buf, uint64(len(blockBytes)))
	buf = append(buf, blockBytes...)
	buf = appendUint64(buf, uint64(len(r.StateRaw)))
	buf = append(buf, r.StateRaw...)
	buf = appendUint64(buf, r.Depth)
	if r.IsCanon {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = appendUint64(buf, uint64(len(r.Children)))
	for _, c := range r.Children {
		buf = append(buf, c[:]...)
	}
	return buf, nil
}

func decodeRecord(data []byte) (*storage.Record, error) {
	r := &storage.Record{}

	blockBytes, rest, err := readLenPrefixed(data)
	if err != nil {
		return nil, err
	}
	r.Block = &types.BeaconBlock{}
	if err := r.Block.UnmarshalSSZ(blockBytes); err != nil {
		return nil, fmt.Errorf("pebblestore: unmarshal block: %w", err)
	}

	stateBytes, rest, err := readLenPrefixed(rest)
	if err != nil {
		return nil, err
	}
	if len(stateBytes) > 0 {
		r.StateRaw = append([]byte(nil), stateBytes...)
	}

	if len(rest) < 8 {
		return nil, storage.ErrCorrupted
	}
	r.Depth = binary.LittleEndian.Uint64(rest[:8])
	rest = rest[8:]

	if len(rest) < 1 {
		return nil, storage.ErrCorrupted
	}
	r.IsCanon = rest[0] != 0
	rest = rest[1:]

	if len(rest) < 8 {
		return nil, storage.ErrCorrupted
	}
	childCount := binary.LittleEndian.Uint64(rest[:8])
	rest = rest[8:]
	if uint64(len(rest)) != childCount*32 {
		return nil, storage.ErrCorrupted
	}
	r.Children = make([]storage.ID, childCount)
	for i := range r.Children {
		copy(r.Children[i][:], rest[i*32:(i+1)*32])
	}
	return r, nil
}

func appendUint64(dst []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(dst, tmp[:]...)
}

func readLenPrefixed(data []byte) (field, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, storage.ErrCorrupted
	}
	n := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]
	if uint64(len(data)) < n {
		return nil, nil, storage.ErrCorrupted
	}
	return data[:n], data[n:], nil
}
