package zstring

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefFromBytesValidation(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		err  error
	}{
		{"empty", []byte{}, ErrNullTerminatorMissing},
		{"nil", nil, ErrNullTerminatorMissing},
		{"no terminator", []byte("abc"), ErrNullTerminatorMissing},
		{"lone terminator", []byte{0}, nil},
		{"ok", []byte("hello\x00"), nil},
		{"interior null", []byte("ab\x00c\x00"), ErrInteriorNull},
		{"double trailing null", []byte("foo\x00\x00"), ErrInteriorNull},
		{"leading null", []byte("\x00abc\x00"), ErrInteriorNull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RefFromBytes(tc.in)
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestRefRoundTrip(t *testing.T) {
	backing := []byte("hello\x00")
	z, err := RefFromBytes(backing)
	require.NoError(t, err)

	assert.Equal(t, 5, z.Len())
	assert.Equal(t, []byte("hello"), z.Bytes())
	assert.Equal(t, []byte("hello\x00"), z.AsSliceWithNull())
	assert.Same(t, &backing[0], z.Ptr())

	var got []byte
	it := z.Iter()
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, b)
	}
	assert.Equal(t, []byte("hello"), got)
}

func TestRefEmptyContent(t *testing.T) {
	z, err := RefFromBytes([]byte{0})
	require.NoError(t, err)
	assert.Equal(t, 0, z.Len())
	assert.Empty(t, z.Bytes())

	it := z.Iter()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestByteIterExhaustsPermanently(t *testing.T) {
	z, err := RefFromBytes([]byte("ab\x00"))
	require.NoError(t, err)

	it := z.Iter()
	for i := 0; i < 2; i++ {
		_, ok := it.Next()
		require.True(t, ok)
	}
	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		require.False(t, ok)
	}

	// a fresh iterator from the same handle starts over
	it2 := z.Iter()
	b, ok := it2.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
}

func TestRefEqual(t *testing.T) {
	a1, err := RefFromBytes([]byte("same\x00"))
	require.NoError(t, err)
	a2, err := RefFromBytes([]byte("same\x00"))
	require.NoError(t, err)
	b, err := RefFromBytes([]byte("other\x00"))
	require.NoError(t, err)
	short, err := RefFromBytes([]byte("sam\x00"))
	require.NoError(t, err)

	assert.True(t, a1.Equal(a1), "same address")
	assert.True(t, a1.Equal(a2), "distinct allocations, same content")
	assert.False(t, a1.Equal(b))
	assert.False(t, a1.Equal(short))
	assert.False(t, short.Equal(a1))

	assert.True(t, a1.EqualBytes([]byte("same")))
	assert.False(t, a1.EqualBytes([]byte("sameX")))
	assert.False(t, a1.EqualBytes([]byte("sam")))
}

func TestRefRoundTripProperty(t *testing.T) {
	prop := func(content []byte) bool {
		// the model holds NUL-free content only
		for i, c := range content {
			if c == 0 {
				content[i] = 1
			}
		}
		backing := append(append([]byte{}, content...), 0)
		z, err := RefFromBytes(backing)
		if err != nil {
			return false
		}
		return z.EqualBytes(content) && z.Len() == len(content)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}
