package hashtable

import (
	"container/list"
	"fmt"
)

// verifyChain checks that every pair in c hashes to c's slot.
func (t *Table) verifyChain(c *list.List) {
	want := -1
	for i, chain := range t.chains {
		if chain == c {
			want = i
			break
		}
	}
	assertf(want >= 0, "chain does not belong to table")
	for e := c.Front(); e != nil; e = e.Next() {
		p := e.Value.(*Pair)
		got := t.slot(p.key)
		assertf(got == want, fmt.Sprintf("pair in slot %d hashes to slot %d", want, got), "key", p.key)
	}
}
