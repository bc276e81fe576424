package zstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutFromBytesValidation(t *testing.T) {
	_, err := MutFromBytes([]byte("abc"))
	require.ErrorIs(t, err, ErrNullTerminatorMissing)
	_, err = MutFromBytes([]byte("a\x00c\x00"))
	require.ErrorIs(t, err, ErrInteriorNull)
	_, err = MutFromBytes([]byte("abc\x00"))
	require.NoError(t, err)
}

func TestMutIterRewritesInPlace(t *testing.T) {
	backing := []byte("abc\x00")
	z, err := MutFromBytes(backing)
	require.NoError(t, err)

	it := z.IterMut()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p = *p - 'a' + 'A'
	}

	assert.Equal(t, []byte("ABC\x00"), backing, "writes land in the caller's memory")
	assert.True(t, z.Ref().EqualBytes([]byte("ABC")))
	assert.Equal(t, 3, z.Len(), "terminator untouched")
}

func TestMutIterStopsAtTerminator(t *testing.T) {
	backing := []byte("x\x00")
	z, err := MutFromBytes(backing)
	require.NoError(t, err)

	it := z.IterMut()
	p, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, &backing[0], p)

	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}
