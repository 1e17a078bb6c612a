package hashtable

import "chaintable/pkg/errors"

// buffer is an owned copy of caller bytes. The zero-length buffer is nil and
// holds no allocation.
type buffer []byte

func newBuffer(b []byte) (buffer, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) > maxBufferLen {
		return nil, errors.ErrAllocation
	}
	buf := make(buffer, len(b))
	copy(buf, b)
	return buf, nil
}

// Pair is one stored key/value association. It owns copies of both.
type Pair struct {
	key   buffer
	value buffer
}

func newPair(key, value []byte) (*Pair, error) {
	k, err := newBuffer(key)
	if err != nil {
		return nil, err
	}
	v, err := newBuffer(value)
	if err != nil {
		return nil, err
	}
	return &Pair{key: k, value: v}, nil
}

// Key returns a read-only view of the pair's key.
func (p *Pair) Key() []byte { return p.key }

// Value returns a read-only view of the pair's value.
func (p *Pair) Value() []byte { return p.value }

func (p *Pair) size() int { return len(p.key) + len(p.value) }

func (p *Pair) release() {
	p.key = nil
	p.value = nil
}
