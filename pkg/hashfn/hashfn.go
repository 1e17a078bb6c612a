// Package hashfn provides hash strategies usable by hashtable.Table.
//
// A strategy maps a key to an unsigned 32-bit value. It must be deterministic
// and free of side effects; the table reduces the value modulo its slot count.
package hashfn

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"chaintable/pkg/errors"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// HashFunc computes the hash of a key.
type HashFunc func(key []byte) uint32

const (
	NameDJB2    = "djb2"
	NameMurmur3 = "murmur3"
	NameXXHash  = "xxhash"
	NameFNV1a   = "fnv1a"

	djb2Seed uint32 = 5381
)

var registry = map[string]HashFunc{
	NameDJB2:    DJB2,
	NameMurmur3: Murmur3,
	NameXXHash:  XXHash,
	NameFNV1a:   FNV1a,
}

// DJB2 is the default multiplicative string hash: h = h*33 + b, seeded with 5381.
func DJB2(key []byte) uint32 {
	h := djb2Seed
	for _, b := range key {
		h = (h << 5) + h + uint32(b)
	}
	return h
}

// Murmur3 hashes the key with 32-bit MurmurHash3.
func Murmur3(key []byte) uint32 {
	return murmur3.Sum32(key)
}

// XXHash folds the 64-bit xxHash of the key into 32 bits.
func XXHash(key []byte) uint32 {
	h := xxhash.Sum64(key)
	return uint32(h) ^ uint32(h>>32)
}

// FNV1a hashes the key with 32-bit FNV-1a.
func FNV1a(key []byte) uint32 {
	h := fnv.New32a()
	h.Write(key)
	return h.Sum32()
}

// ByName returns the strategy registered under name (case-insensitive).
func ByName(name string) (HashFunc, error) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownHashFunc, name)
	}
	return fn, nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
