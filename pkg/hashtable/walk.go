package hashtable

import (
	"bytes"
	"container/list"
)

// Direction selects the end of a chain a positional operation counts from.
type Direction int

const (
	Forward Direction = iota // from the chain head
	Reverse                  // from the chain tail
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// ends returns the first element of c in direction d and the step that
// advances along it.
func ends(c *list.List, d Direction) (*list.Element, func(*list.Element) *list.Element) {
	if d == Reverse {
		return c.Back(), (*list.Element).Prev
	}
	return c.Front(), (*list.Element).Next
}

// walk returns the element holding the pos-th pair whose key equals key,
// counted from the end of c selected by d, or nil if there are not enough
// matches.
func walk(c *list.List, key []byte, pos uint, d Direction) *list.Element {
	e, next := ends(c, d)
	for ; e != nil; e = next(e) {
		if !bytes.Equal(e.Value.(*Pair).key, key) {
			continue
		}
		if pos == 0 {
			return e
		}
		pos--
	}
	return nil
}
