// internal/core/services/store.go
package services

import (
	"sort"
	"sync"
)

// IndexSpec declares a secondary index over store entries. Key returns
// the index key for an entry; entries with an empty key are not indexed.
type IndexSpec[T any] struct {
	Name string
	Key  func(T) string
}

type storeIndex[T any] struct {
	key func(T) string
	ids map[string]map[int64]struct{}
}

// Store is an in-memory mirror of the active (non-soft-deleted) records
// of one entity kind, keyed by ID with optional secondary indexes. It is
// a performance cache, not a source of truth: mutators never fail loudly,
// they return a signal the caller logs, and any divergence from the
// database self-heals on the next Initialize.
//
// All methods are safe for concurrent use; reads never block each other.
type Store[T any] struct {
	mu      sync.RWMutex
	byID    map[int64]T
	indexes map[string]*storeIndex[T]
	id      func(T) int64
}

// NewStore builds an empty store with the given ID extractor and indexes.
func NewStore[T any](id func(T) int64, specs ...IndexSpec[T]) *Store[T] {
	s := &Store[T]{
		byID:    make(map[int64]T),
		indexes: make(map[string]*storeIndex[T], len(specs)),
		id:      id,
	}
	for _, spec := range specs {
		s.indexes[spec.Name] = &storeIndex[T]{
			key: spec.Key,
			ids: make(map[string]map[int64]struct{}),
		}
	}
	return s
}

// Initialize atomically replaces the entire contents with items,
// rebuilding every index. Used after a full active-records fetch.
func (s *Store[T]) Initialize(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[int64]T, len(items))
	for _, idx := range s.indexes {
		idx.ids = make(map[string]map[int64]struct{})
	}
	for _, item := range items {
		id := s.id(item)
		s.byID[id] = item
		s.indexInsert(item, id)
	}
}

// Insert adds item; returns false (without inserting) when the ID is
// already present.
func (s *Store[T]) Insert(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(item)
	if _, exists := s.byID[id]; exists {
		return false
	}
	s.byID[id] = item
	s.indexInsert(item, id)
	return true
}

// Update replaces the entry in place; returns false when absent.
func (s *Store[T]) Update(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(item)
	old, exists := s.byID[id]
	if !exists {
		return false
	}
	s.indexRemove(old, id)
	s.byID[id] = item
	s.indexInsert(item, id)
	return true
}

// Remove deletes the entry from the store and every index; reports
// whether it was present.
func (s *Store[T]) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.byID[id]
	if !exists {
		return false
	}
	s.indexRemove(old, id)
	delete(s.byID, id)
	return true
}

// GetByID returns the entry for id.
func (s *Store[T]) GetByID(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.byID[id]
	return item, ok
}

// GetByKey returns one entry matching key on the named index. Intended
// for unique indexes; with duplicates the lowest ID wins.
func (s *Store[T]) GetByKey(index, key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	idx, ok := s.indexes[index]
	if !ok {
		return zero, false
	}
	ids, ok := idx.ids[key]
	if !ok || len(ids) == 0 {
		return zero, false
	}
	best := int64(-1)
	for id := range ids {
		if best < 0 || id < best {
			best = id
		}
	}
	return s.byID[best], true
}

// GetAllByKey returns every entry matching key on the named index,
// ordered by ID.
func (s *Store[T]) GetAllByKey(index, key string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.indexes[index]
	if !ok {
		return nil
	}
	ids, ok := idx.ids[key]
	if !ok {
		return nil
	}
	return s.collect(ids)
}

// Search returns every entry satisfying match, ordered by ID.
func (s *Store[T]) Search(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, item := range s.byID {
		if match(item) {
			out = append(out, item)
		}
	}
	s.sortByID(out)
	return out
}

// All returns a snapshot of every entry, ordered by ID.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	s.sortByID(out)
	return out
}

// Count returns the number of entries.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// indexInsert and indexRemove maintain secondary indexes; callers hold
// the write lock.

func (s *Store[T]) indexInsert(item T, id int64) {
	for _, idx := range s.indexes {
		key := idx.key(item)
		if key == "" {
			continue
		}
		bucket, ok := idx.ids[key]
		if !ok {
			bucket = make(map[int64]struct{})
			idx.ids[key] = bucket
		}
		bucket[id] = struct{}{}
	}
}

func (s *Store[T]) indexRemove(item T, id int64) {
	for _, idx := range s.indexes {
		key := idx.key(item)
		if key == "" {
			continue
		}
		if bucket, ok := idx.ids[key]; ok {
			delete(bucket, id)
			if len(bucket) == 0 {
				delete(idx.ids, key)
			}
		}
	}
}

func (s *Store[T]) collect(ids map[int64]struct{}) []T {
	out := make([]T, 0, len(ids))
	for id := range ids {
		out = append(out, s.byID[id])
	}
	s.sortByID(out)
	return out
}

func (s *Store[T]) sortByID(items []T) {
	sort.Slice(items, func(i, j int) bool {
		return s.id(items[i]) < s.id(items[j])
	})
}
