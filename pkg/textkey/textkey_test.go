package textkey

import (
	stderrors "errors"
	"testing"

	"chaintable/pkg/errors"
	"chaintable/pkg/hashtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	ht, err := New(16)
	require.NoError(t, err)

	require.NoError(t, InsertString(ht, "k", "v"))

	got, err := GetString(ht, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	// stored with the terminator, key without
	raw, err := ht.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'v', 0}, raw)
	assert.Equal(t, len("k")+len("v")+1, ht.Size())
}

func TestEmptyValueKeepsTerminator(t *testing.T) {
	ht, err := New(4)
	require.NoError(t, err)

	require.NoError(t, InsertString(ht, "k", ""))
	got, err := GetString(ht, "k")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTextIsCutAtNUL(t *testing.T) {
	ht, err := New(4)
	require.NoError(t, err)

	require.NoError(t, InsertString(ht, "key\x00ignored", "val\x00ignored"))
	got, err := GetString(ht, "key")
	require.NoError(t, err)
	assert.Equal(t, "val", got)

	err = InsertString(ht, "\x00key", "v")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))
}

func TestInvalidAndMissingKeys(t *testing.T) {
	ht, err := New(4)
	require.NoError(t, err)

	assert.True(t, stderrors.Is(InsertString(ht, "", "v"), errors.ErrInvalidArgument))

	_, err = GetString(ht, "")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))

	_, err = GetString(ht, "missing")
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestPositional(t *testing.T) {
	ht, err := New(4)
	require.NoError(t, err)

	require.NoError(t, InsertString(ht, "k", "first"))
	require.NoError(t, InsertStringAt(ht, "k", "last", 0, hashtable.Reverse))
	require.NoError(t, InsertString(ht, "k", "head"))

	got, err := GetStringAt(ht, "k", 0, hashtable.Reverse)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	got, err = GetStringAt(ht, "k", 1, hashtable.Forward)
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	require.NoError(t, RemoveString(ht, "k", 0, hashtable.Forward))
	got, err = GetString(ht, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	assert.Equal(t, 2, ht.Len())
}
