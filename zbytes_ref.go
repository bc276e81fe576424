package zstring

import "github.com/rawbytedev/zstring/internal/common"

// ZBytesRef borrows a read-only pointer to zero-terminated bytes.
//
// The bytes have no enforced encoding. The handle holds only the start
// address, so it is suitable for direct FFI use; any number of copies may
// read the same region concurrently as long as no writer exists.
type ZBytesRef struct {
	p *byte
}

// RefFromBytes validates b and returns a handle aliasing its memory.
// The last byte must be zero and no earlier byte may be zero; otherwise
// ErrNullTerminatorMissing or ErrInteriorNull is returned. No copy is made,
// so the handle is valid only while b's backing array is.
func RefFromBytes(b []byte) (ZBytesRef, error) {
	if err := checkTerminated(b); err != nil {
		return ZBytesRef{}, err
	}
	return ZBytesRef{p: &b[0]}, nil
}

// RefFromPtrUnchecked wraps p without validation. The caller certifies that
// p is non-nil and points at bytes ending in exactly one terminator with no
// interior zero; violating that is not a recoverable error.
func RefFromPtrUnchecked(p *byte) ZBytesRef {
	return ZBytesRef{p: p}
}

// Ptr returns the start address. This is the FFI boundary value.
func (z ZBytesRef) Ptr() *byte { return z.p }

// Len scans for the terminator and returns the content length, excluding
// the terminator. Linear time on every call; never cached.
func (z ZBytesRef) Len() int { return common.TermLen(z.p) }

// Bytes aliases the content, excluding the terminator. Linear time to
// recover the length.
func (z ZBytesRef) Bytes() []byte { return common.Slice(z.p, common.TermLen(z.p)) }

// AsSliceWithNull aliases the content including the terminator.
// Linear time to recover the length.
func (z ZBytesRef) AsSliceWithNull() []byte { return common.Slice(z.p, common.TermLen(z.p)+1) }

// Iter returns a fresh byte iterator over the content. The handle itself is
// unaffected; call Iter again for another pass.
func (z ZBytesRef) Iter() ByteIter { return ByteIter{p: z.p} }

// Equal reports element-wise content equality up to the terminator,
// independent of the regions' addresses.
func (z ZBytesRef) Equal(o ZBytesRef) bool {
	if z.p == o.p {
		return true
	}
	a, b := z.Iter(), o.Iter()
	for {
		x, xok := a.Next()
		y, yok := b.Next()
		if xok != yok {
			return false
		}
		if !xok {
			return true
		}
		if x != y {
			return false
		}
	}
}

// EqualBytes reports whether the content equals b (b carries no terminator).
func (z ZBytesRef) EqualBytes(b []byte) bool {
	it := z.Iter()
	for _, want := range b {
		got, ok := it.Next()
		if !ok || got != want {
			return false
		}
	}
	_, ok := it.Next()
	return !ok
}

// ByteIter walks a zero-terminated region one byte at a time. It stops
// permanently at the terminator, which is never yielded. Single pass.
type ByteIter struct {
	p *byte
}

// Next yields the byte under the cursor and advances, or reports exhaustion
// once the terminator is reached. The read is an unchecked dereference; its
// safety is the construction-time invariant of the source handle.
func (it *ByteIter) Next() (byte, bool) {
	b := *it.p
	if b == 0 {
		return 0, false
	}
	it.p = common.Add(it.p, 1)
	return b, true
}
