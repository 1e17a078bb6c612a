// Package store serializes access to a hashtable.Table so it can be shared
// between goroutines.
package store

import (
	"fmt"
	"sync"

	"chaintable/internal/config"
	"chaintable/pkg/errors"
	"chaintable/pkg/hashtable"
	"chaintable/pkg/logger"
)

// Store guards one table with one mutex. Values leave the store as copies,
// so callers never hold views into table storage.
type Store struct {
	mu    sync.Mutex
	table *hashtable.Table
}

// New wraps t.
func New(t *hashtable.Table) *Store {
	return &Store{table: t}
}

// Open builds a table from conf.
func Open(conf *config.Config) (*Store, error) {
	fn, err := conf.Hash()
	if err != nil {
		return nil, err
	}
	t, err := hashtable.New(conf.Slots, fn)
	if err != nil {
		return nil, err
	}
	logger.Info("table opened", "slots", conf.Slots, "hash_func", conf.HashFunc)
	return New(t), nil
}

// Get returns a copy of the pos-th value stored under key.
func (s *Store) Get(key []byte, pos uint, dir hashtable.Direction) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.table.GetAt(key, pos, dir)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Insert adds key and value at pos counted from dir. With unique set it
// fails if key is already present; a unique pair always goes to the end
// selected by dir, so pos must be zero.
func (s *Store) Insert(key, value []byte, pos uint, dir hashtable.Direction, unique bool) error {
	if unique && pos > 0 {
		return fmt.Errorf("%w: unique insert takes no position", errors.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if unique {
		err = s.table.InsertUniqueAt(key, value, dir)
	} else {
		err = s.table.InsertAt(key, value, pos, dir)
	}
	if err != nil {
		logger.Debug("insert failed", "key", string(key), "pos", pos, "dir", dir.String(), "error", err)
		return err
	}
	logger.Debug("insert", "key", string(key), "pos", pos, "dir", dir.String(), "pairs", s.table.Len())
	return nil
}

// Remove deletes the pos-th pair stored under key.
func (s *Store) Remove(key []byte, pos uint, dir hashtable.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Remove(key, pos, dir); err != nil {
		logger.Debug("remove failed", "key", string(key), "pos", pos, "dir", dir.String(), "error", err)
		return err
	}
	logger.Debug("remove", "key", string(key), "pos", pos, "dir", dir.String(), "pairs", s.table.Len())
	return nil
}

// Reset empties the table.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.table.Len()
	s.table.Reset()
	logger.Info("table reset", "released", n)
}

// Stats reports the table's contents.
func (s *Store) Stats() hashtable.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Stats()
}

// Close destroys the table. The store must not be used afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Destroy()
}
