// Package pebblestore implements storage.Store on top of cockroachdb/pebble,
// the durable counterpart to the in-memory backend in storage/memory. The
// four column families spec §4.8 describes (blocks, canon depth mappings,
// auxiliaries, info) are modeled as key prefixes within pebble's single flat
// keyspace, which is the idiomatic way pebble-backed services partition
// data since pebble itself has no column-family concept.
package pebblestore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/lumenforge/beacon/storage"
	"github.com/lumenforge/beacon/types"
)

const (
	prefixBlock      byte = 0x01
	prefixCanonDepth byte = 0x02
	prefixAux        byte = 0x03
	prefixInfo       byte = 0x04
)

var (
	infoHeadKey    = []byte{prefixInfo, 'h'}
	infoGenesisKey = []byte{prefixInfo, 'g'}
)

// Store is a pebble-backed storage.Store.
type Store struct {
	db       *pebble.DB
	commitMu sync.Mutex
}

// Open opens (creating if absent) a pebble database at dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebblestore: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func blockKey(id storage.ID) []byte {
	k := make([]byte, 1+len(id))
	k[0] = prefixBlock
	copy(k[1:], id[:])
	return k
}

func canonDepthKey(depth uint64) []byte {
	k := make([]byte, 9)
	k[0] = prefixCanonDepth
	binary.BigEndian.PutUint64(k[1:], depth)
	return k
}

func auxKey(name string) []byte {
	k := make([]byte, 1+len(name))
	k[0] = prefixAux
	copy(k[1:], name)
	return k
}

// wrapIo wraps a backend failure that is neither "not found" nor a decode
// failure so callers can still recover it with errors.Unwrap while checking
// errors.Is(err, storage.ErrIo).
func wrapIo(err error) error {
	return fmt.Errorf("pebblestore: %w: %w", storage.ErrIo, err)
}

func (s *Store) getID(key []byte) (storage.ID, error) {
	v, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return storage.ID{}, storage.ErrNotExist
	}
	if err != nil {
		return storage.ID{}, wrapIo(err)
	}
	defer closer.Close()
	if len(v) != 32 {
		return storage.ID{}, storage.ErrCorrupted
	}
	var id storage.ID
	copy(id[:], v)
	return id, nil
}

func (s *Store) Head() (storage.ID, error)    { return s.getID(infoHeadKey) }
func (s *Store) Genesis() (storage.ID, error) { return s.getID(infoGenesisKey) }

func (s *Store) getRecord(id storage.ID) (*storage.Record, error) {
	v, closer, err := s.db.Get(blockKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, wrapIo(err)
	}
	defer closer.Close()
	return decodeRecord(v)
}

func (s *Store) Contains(id storage.ID) (bool, error) {
	_, closer, err := s.db.Get(blockKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapIo(err)
	}
	closer.Close()
	return true, nil
}

func (s *Store) IsCanon(id storage.ID) (bool, error) {
	r, err := s.getRecord(id)
	if err != nil {
		return false, err
	}
	return r.IsCanon, nil
}

func (s *Store) BlockAt(id storage.ID) (*types.BeaconBlock, error) {
	r, err := s.getRecord(id)
	if err != nil {
		return nil, err
	}
	return r.Block, nil
}

func (s *Store) DepthAt(id storage.ID) (uint64, error) {
	r, err := s.getRecord(id)
	if err != nil {
		return 0, err
	}
	return r.Depth, nil
}

func (s *Store) ChildrenAt(id storage.ID) ([]storage.ID, error) {
	r, err := s.getRecord(id)
	if err != nil {
		return nil, err
	}
	return r.Children, nil
}

func (s *Store) StateAt(id storage.ID) ([]byte, error) {
	r, err := s.getRecord(id)
	if err != nil {
		return nil, err
	}
	return r.StateRaw, nil
}

func (s *Store) LookupCanonDepth(depth uint64) (storage.ID, bool, error) {
	id, err := s.getID(canonDepthKey(depth))
	if errors.Is(err, storage.ErrNotExist) {
		return storage.ID{}, false, nil
	}
	if err != nil {
		return storage.ID{}, false, err
	}
	return id, true, nil
}

func (s *Store) Auxiliary(key string) ([]byte, bool, error) {
	v, closer, err := s.db.Get(auxKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapIo(err)
	}
	defer closer.Close()
	return append([]byte(nil), v...), true, nil
}

// Commit applies an Operation as a single pebble.Batch, so it is durable
// atomically: either every write in the batch lands, or (on an I/O error)
// none does, matching spec §4.8's all-or-nothing commit contract. Child
// appends are read-modify-write within the same batch construction, before
// the batch is committed; commitMu serializes whole commits, so concurrent
// commits never interleave.
func (s *Store) Commit(op *storage.Operation) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	batch := s.db.NewBatch()
	defer batch.Close()

	touchedParents := make(map[storage.ID]*storage.Record)
	for _, ins := range op.Inserts {
		rec := &storage.Record{
			Block:    ins.Block,
			StateRaw: ins.StateRaw,
			Depth:    ins.Depth,
			IsCanon:  ins.IsCanon,
		}
		parent, ok := touchedParents[ins.ParentID]
		if !ok {
			existing, err := s.getRecord(ins.ParentID)
			if err == nil {
				parent = existing
			} else if errors.Is(err, storage.ErrNotExist) {
				parent = nil
			} else {
				return err
			}
		}
		if parent != nil {
			parent.Children = append(parent.Children, ins.ID)
			touchedParents[ins.ParentID] = parent
		}

		encoded, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if err := batch.Set(blockKey(ins.ID), encoded, nil); err != nil {
			return wrapIo(err)
		}
	}
	for parentID, rec := range touchedParents {
		encoded, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if err := batch.Set(blockKey(parentID), encoded, nil); err != nil {
			return wrapIo(err)
		}
	}
	for id, canon := range op.CanonicalityFlips {
		rec, err := s.getRecord(id)
		if err != nil {
			return err
		}
		rec.IsCanon = canon
		encoded, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if err := batch.Set(blockKey(id), encoded, nil); err != nil {
			return wrapIo(err)
		}
	}
	for depth, id := range op.CanonDepthRemaps {
		idCopy := id
		if err := batch.Set(canonDepthKey(depth), idCopy[:], nil); err != nil {
			return wrapIo(err)
		}
	}
	for k, v := range op.AuxiliaryUpserts {
		if err := batch.Set(auxKey(k), v, nil); err != nil {
			return wrapIo(err)
		}
	}
	if op.SetHead != nil {
		if err := batch.Set(infoHeadKey, op.SetHead[:], nil); err != nil {
			return wrapIo(err)
		}
	}
	if op.SetGenesis != nil {
		if err := batch.Set(infoGenesisKey, op.SetGenesis[:], nil); err != nil {
			return wrapIo(err)
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return wrapIo(err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
