package zstring

import "github.com/rawbytedev/zstring/internal/common"

// ZBytesMut borrows a writable pointer to zero-terminated bytes.
//
// At most one live ZBytesMut may exist per region, with no concurrent
// readers; that exclusivity is a caller obligation, not enforced here.
// Content bytes may be overwritten freely but never set to zero: no length
// is stored, so writing a zero would silently shrink the logical content.
type ZBytesMut struct {
	p *byte
}

// MutFromBytes validates b and returns an exclusive writable handle
// aliasing its memory. Same validation and aliasing rules as RefFromBytes.
func MutFromBytes(b []byte) (ZBytesMut, error) {
	if err := checkTerminated(b); err != nil {
		return ZBytesMut{}, err
	}
	return ZBytesMut{p: &b[0]}, nil
}

// MutFromPtrUnchecked wraps p without validation; caller-certified.
func MutFromPtrUnchecked(p *byte) ZBytesMut {
	return ZBytesMut{p: p}
}

// Ref returns the read-only view of the same region.
func (z ZBytesMut) Ref() ZBytesRef { return ZBytesRef{p: z.p} }

// Ptr returns the start address.
func (z ZBytesMut) Ptr() *byte { return z.p }

// Len scans for the terminator and returns the content length. Linear time.
func (z ZBytesMut) Len() int { return common.TermLen(z.p) }

// Iter returns a fresh read-only byte iterator over the content.
func (z ZBytesMut) Iter() ByteIter { return ByteIter{p: z.p} }

// IterMut returns an iterator yielding a pointer to each content byte in
// order, stopping at the terminator. At most one should be live at a time.
// Writing zero through a yielded pointer breaks the handle's invariants.
func (z ZBytesMut) IterMut() MutByteIter { return MutByteIter{p: z.p} }

// MutByteIter walks a zero-terminated region yielding writable positions.
// Single pass; the terminator is never yielded.
type MutByteIter struct {
	p *byte
}

// Next yields a pointer to the byte under the cursor and advances, or
// reports exhaustion at the terminator.
func (it *MutByteIter) Next() (*byte, bool) {
	if *it.p == 0 {
		return nil, false
	}
	p := it.p
	it.p = common.Add(it.p, 1)
	return p, true
}
