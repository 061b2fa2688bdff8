// Package memory implements storage.Store entirely in process memory,
// guarded by a single reader-writer mutex the way the teacher's in-memory
// backend does. It is useful for tests and for single-process demos; the
// pebble-backed sibling in storage/pebblestore is the durable equivalent.
package memory

import (
	"sync"

	"github.com/lumenforge/beacon/storage"
	"github.com/lumenforge/beacon/types"
)

// Store is an in-memory storage.Store. The head pointer is the
// single-writer/multi-reader cell spec §5/§9 describes; commit holds the
// write lock for its whole duration so readers never observe a partial
// batch.
type Store struct {
	mu sync.RWMutex

	records    map[storage.ID]*storage.Record
	canonDepth map[uint64]storage.ID
	auxiliary  map[string][]byte
	head       storage.ID
	genesis    storage.ID
	hasHead    bool
	hasGenesis bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records:    make(map[storage.ID]*storage.Record),
		canonDepth: make(map[uint64]storage.ID),
		auxiliary:  make(map[string][]byte),
	}
}

func (s *Store) Head() (storage.ID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasHead {
		return storage.ID{}, storage.ErrNotExist
	}
	return s.head, nil
}

func (s *Store) Genesis() (storage.ID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasGenesis {
		return storage.ID{}, storage.ErrNotExist
	}
	return s.genesis, nil
}

func (s *Store) Contains(id storage.ID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}

func (s *Store) IsCanon(id storage.ID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return false, storage.ErrNotExist
	}
	return r.IsCanon, nil
}

func (s *Store) BlockAt(id storage.ID) (*types.BeaconBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return r.Block, nil
}

func (s *Store) DepthAt(id storage.ID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return 0, storage.ErrNotExist
	}
	return r.Depth, nil
}

func (s *Store) ChildrenAt(id storage.ID) ([]storage.ID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, storage.ErrNotExist
	}
	out := make([]storage.ID, len(r.Children))
	copy(out, r.Children)
	return out, nil
}

func (s *Store) StateAt(id storage.ID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, storage.ErrNotExist
	}
	return r.StateRaw, nil
}

func (s *Store) LookupCanonDepth(depth uint64) (storage.ID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.canonDepth[depth]
	return id, ok, nil
}

func (s *Store) Auxiliary(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.auxiliary[key]
	return v, ok, nil
}

// Commit applies an Operation atomically: the write lock is held for the
// whole duration, so a reader observes either the pre-commit or
// post-commit state, never a partial batch (spec §5).
func (s *Store) Commit(op *storage.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ins := range op.Inserts {
		s.records[ins.ID] = &storage.Record{
			Block:    ins.Block,
			StateRaw: ins.StateRaw,
			Depth:    ins.Depth,
			IsCanon:  ins.IsCanon,
		}
		if parent, ok := s.records[ins.ParentID]; ok {
			parent.Children = append(parent.Children, ins.ID)
		}
	}
	for depth, id := range op.CanonDepthRemaps {
		s.canonDepth[depth] = id
	}
	for id, canon := range op.CanonicalityFlips {
		if r, ok := s.records[id]; ok {
			r.IsCanon = canon
		}
	}
	for k, v := range op.AuxiliaryUpserts {
		s.auxiliary[k] = v
	}
	if op.SetHead != nil {
		s.head = *op.SetHead
		s.hasHead = true
	}
	if op.SetGenesis != nil {
		s.genesis = *op.SetGenesis
		s.hasGenesis = true
	}
	return nil
}

func (s *Store) Close() error { return nil }
