// Package hashtable implements a fixed-size chained hash table keyed by
// arbitrary bytes.
//
// Each slot holds an ordered chain of pairs. Duplicate keys are allowed and
// are told apart by their position among equal keys, counted from either end
// of the chain. The number of slots is set at construction and never changes.
//
// A Table is not safe for concurrent use. Callers must serialize access, for
// example with one mutex per table.
//
// Values returned by Get and GetAt alias the table's storage. They are valid
// until the next mutating call on the table and must not be modified.
package hashtable

import (
	"container/list"
	"fmt"

	"chaintable/pkg/errors"
	"chaintable/pkg/hashfn"
)

// maxBufferLen caps key and value lengths so sizes stay representable on
// 32-bit platforms.
const maxBufferLen = 1<<31 - 1

// Table is a chained hash table with a fixed number of slots.
//
// The zero value is unusable until Init is called.
type Table struct {
	chains []*list.List
	hash   hashfn.HashFunc
	count  int // number of pairs
	size   int // key and value bytes held
}

// Stats summarizes the contents of a table.
type Stats struct {
	Slots        int `json:"slots"`
	Pairs        int `json:"pairs"`
	Bytes        int `json:"bytes"`
	EmptySlots   int `json:"empty_slots"`
	LongestChain int `json:"longest_chain"`
}

// New allocates a table with the given number of slots bound to fn.
func New(slots uint, fn hashfn.HashFunc) (*Table, error) {
	t := &Table{}
	if err := t.Init(slots, fn); err != nil {
		return nil, err
	}
	return t, nil
}

// Init prepares caller-provided table storage. Any pairs already held by t
// are released.
func (t *Table) Init(slots uint, fn hashfn.HashFunc) error {
	if t == nil {
		assertf(false, "Init called on nil table")
		return errors.ErrTableNotInitialized
	}
	if slots == 0 {
		return fmt.Errorf("%w: slot count must be positive", errors.ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: hash function is required", errors.ErrInvalidArgument)
	}
	if uint64(slots) > maxBufferLen {
		return fmt.Errorf("%w: %d slots", errors.ErrAllocation, slots)
	}

	chains := make([]*list.List, slots)
	for i := range chains {
		chains[i] = list.New()
	}
	t.Reset()
	t.chains = chains
	t.hash = fn
	return nil
}

// Reset releases every pair. The slot count and hash function are kept and
// the table stays usable.
func (t *Table) Reset() {
	if t == nil {
		return
	}
	for _, c := range t.chains {
		for e := c.Front(); e != nil; e = e.Next() {
			e.Value.(*Pair).release()
		}
		c.Init()
	}
	t.count = 0
	t.size = 0
}

// Destroy releases every pair and the slot array. It is a no-op on a nil
// table. A destroyed table must be re-initialized with Init before reuse.
func (t *Table) Destroy() {
	if t == nil {
		return
	}
	t.Reset()
	t.chains = nil
	t.hash = nil
}

// Get returns the value of the first pair matching key, counted from the
// chain head.
func (t *Table) Get(key []byte) ([]byte, error) {
	return t.GetAt(key, 0, Forward)
}

// Contains reports whether at least one pair has the given key.
func (t *Table) Contains(key []byte) bool {
	_, err := t.Get(key)
	return err == nil
}

// GetAt returns the value of the pos-th pair matching key, counted from the
// end of the chain selected by dir. It returns errors.ErrNotFound when fewer
// than pos+1 pairs match.
func (t *Table) GetAt(key []byte, pos uint, dir Direction) ([]byte, error) {
	c, err := t.lookup(key)
	if err != nil {
		return nil, err
	}
	e := walk(c, key, pos, dir)
	if e == nil {
		return nil, errors.ErrNotFound
	}
	return e.Value.(*Pair).value, nil
}

// Insert adds a copy of key and value in front of any pair with the same key.
// Existing pairs with an equal key are kept.
func (t *Table) Insert(key, value []byte) error {
	return t.InsertAt(key, value, 0, Forward)
}

// InsertUnique adds a copy of key and value unless the key is already
// present, in which case it returns errors.ErrDuplicateKey.
func (t *Table) InsertUnique(key, value []byte) error {
	return t.InsertUniqueAt(key, value, Forward)
}

// InsertUniqueAt is InsertUnique with the new pair placed at the end of the
// chain selected by dir.
func (t *Table) InsertUniqueAt(key, value []byte, dir Direction) error {
	c, err := t.lookup(key)
	if err != nil {
		return err
	}
	if walk(c, key, 0, Forward) != nil {
		return errors.ErrDuplicateKey
	}
	return t.InsertAt(key, value, 0, dir)
}

// InsertAt adds a copy of key and value so that a walk from the end selected
// by dir meets the new pair as the pos-th match for key.
//
// With pos == 0 the pair becomes the new head (Forward) or tail (Reverse) of
// its chain. With pos > 0 the pos-th existing match must exist; the new pair
// is linked next to it on the side facing dir. Otherwise InsertAt returns
// errors.ErrNotFound and the table is unchanged.
func (t *Table) InsertAt(key, value []byte, pos uint, dir Direction) error {
	c, err := t.lookup(key)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return fmt.Errorf("%w: empty value", errors.ErrInvalidArgument)
	}

	var mark *list.Element
	if pos > 0 {
		if mark = walk(c, key, pos, dir); mark == nil {
			return errors.ErrNotFound
		}
	}

	p, err := newPair(key, value)
	if err != nil {
		return err
	}

	switch {
	case mark == nil && dir == Reverse:
		c.PushBack(p)
	case mark == nil:
		c.PushFront(p)
	case dir == Reverse:
		c.InsertAfter(p, mark)
	default:
		c.InsertBefore(p, mark)
	}
	t.count++
	t.size += p.size()

	if debug {
		t.verifyChain(c)
	}
	return nil
}

// Remove unlinks and releases the pos-th pair matching key, counted from the
// end of the chain selected by dir.
func (t *Table) Remove(key []byte, pos uint, dir Direction) error {
	c, err := t.lookup(key)
	if err != nil {
		return err
	}
	e := walk(c, key, pos, dir)
	if e == nil {
		return errors.ErrNotFound
	}
	p := c.Remove(e).(*Pair)
	t.count--
	t.size -= p.size()
	p.release()

	if debug {
		t.verifyChain(c)
	}
	return nil
}

// Len returns the number of pairs held.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Size returns the number of key and value bytes held.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Slots returns the fixed slot count, or 0 for an uninitialized table.
func (t *Table) Slots() int {
	if t == nil {
		return 0
	}
	return len(t.chains)
}

// ChainLen returns the number of pairs in slot i.
func (t *Table) ChainLen(i int) int {
	if t == nil || i < 0 || i >= len(t.chains) {
		return 0
	}
	return t.chains[i].Len()
}

// Stats returns a summary of the table's contents.
func (t *Table) Stats() Stats {
	s := Stats{Slots: t.Slots(), Pairs: t.Len(), Bytes: t.Size()}
	for i := 0; i < s.Slots; i++ {
		n := t.chains[i].Len()
		if n == 0 {
			s.EmptySlots++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}

// SlotOf returns the slot index key maps to.
func (t *Table) SlotOf(key []byte) (int, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	return t.slot(key), nil
}

func (t *Table) slot(key []byte) int {
	return int(t.hash(key) % uint32(len(t.chains)))
}

func (t *Table) ready() error {
	if t == nil || t.chains == nil {
		assertf(false, "operation on uninitialized table")
		return errors.ErrTableNotInitialized
	}
	return nil
}

// lookup validates key and returns the chain it maps to.
func (t *Table) lookup(key []byte) (*list.List, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty key", errors.ErrInvalidArgument)
	}
	return t.chains[t.slot(key)], nil
}
