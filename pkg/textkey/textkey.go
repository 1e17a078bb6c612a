// Package textkey stores text keys and values in a hashtable.Table using C
// string conventions.
//
// Keys are stored without a terminator. Values are stored with a trailing NUL
// byte, which is stripped again on lookup. Text is cut at its first NUL byte.
package textkey

import (
	"bytes"
	"fmt"
	"strings"

	"chaintable/pkg/errors"
	"chaintable/pkg/hashfn"
	"chaintable/pkg/hashtable"
)

// New returns a table bound to the default string hash.
func New(slots uint) (*hashtable.Table, error) {
	return hashtable.New(slots, hashfn.DJB2)
}

// InsertString adds key and value in front of any pair with the same key.
func InsertString(t *hashtable.Table, key, value string) error {
	return InsertStringAt(t, key, value, 0, hashtable.Forward)
}

// InsertStringAt is the positional form of InsertString.
func InsertStringAt(t *hashtable.Table, key, value string, pos uint, dir hashtable.Direction) error {
	k, err := keyBytes(key)
	if err != nil {
		return err
	}
	return t.InsertAt(k, valueBytes(value), pos, dir)
}

// GetString returns the value of the first pair matching key.
func GetString(t *hashtable.Table, key string) (string, error) {
	return GetStringAt(t, key, 0, hashtable.Forward)
}

// GetStringAt is the positional form of GetString.
func GetStringAt(t *hashtable.Table, key string, pos uint, dir hashtable.Direction) (string, error) {
	k, err := keyBytes(key)
	if err != nil {
		return "", err
	}
	v, err := t.GetAt(k, pos, dir)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return string(v), nil
}

// RemoveString removes the pos-th pair matching key.
func RemoveString(t *hashtable.Table, key string, pos uint, dir hashtable.Direction) error {
	k, err := keyBytes(key)
	if err != nil {
		return err
	}
	return t.Remove(k, pos, dir)
}

func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func keyBytes(key string) ([]byte, error) {
	key = cstring(key)
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", errors.ErrInvalidArgument)
	}
	return []byte(key), nil
}

// valueBytes returns value followed by its terminator.
func valueBytes(value string) []byte {
	value = cstring(value)
	b := make([]byte, len(value)+1)
	copy(b, value)
	return b
}
