package zstring

import "github.com/rawbytedev/zstring/internal/common"

// ZStr borrows a read-only pointer to zero-terminated bytes that are
// guaranteed valid UTF-8, the way a string's bytes are. Same thin-pointer
// FFI layout as ZBytesRef; only the content guarantee differs.
type ZStr struct {
	p *byte
}

// ZStrFromString returns a handle aliasing s's bytes. Because no copy is
// made, s itself must already end in at least one NUL; trailing NULs beyond
// the first are tolerated (the content stops at the first one). Fails with
// ErrNoTrailingNulls when s has no trailing NUL, and ErrInteriorNulls when
// a NUL occurs before the trailing run.
func ZStrFromString(s string) (ZStr, error) {
	end := len(s)
	for end > 0 && s[end-1] == 0 {
		end--
	}
	if end == len(s) {
		return ZStr{}, ErrNoTrailingNulls
	}
	for i := 0; i < end; i++ {
		if s[i] == 0 {
			return ZStr{}, ErrInteriorNulls
		}
	}
	b := common.StringToBytes(s)
	return ZStr{p: &b[0]}, nil
}

// ZStrFromPtrUnchecked wraps p without validation. The caller certifies the
// terminator invariants and that the content is valid UTF-8.
func ZStrFromPtrUnchecked(p *byte) ZStr {
	return ZStr{p: p}
}

// Ptr returns the start address. This is the FFI boundary value.
func (z ZStr) Ptr() *byte { return z.p }

// Len scans for the terminator and returns the content length in bytes.
func (z ZStr) Len() int { return common.TermLen(z.p) }

// Ref views the same region as untyped bytes.
func (z ZStr) Ref() ZBytesRef { return ZBytesRef{p: z.p} }

// Bytes aliases the content, excluding the terminator.
func (z ZStr) Bytes() []byte { return common.Slice(z.p, common.TermLen(z.p)) }

// AsStringWithNull aliases the content including the terminator as a
// string. Linear time to recover the length.
func (z ZStr) AsStringWithNull() string {
	return common.BytesToString(common.Slice(z.p, common.TermLen(z.p)+1))
}

// Iter returns a fresh byte iterator over the content.
func (z ZStr) Iter() ByteIter { return ByteIter{p: z.p} }

// Chars returns a fresh scalar-value iterator: byte iteration fed through
// the incremental decoder.
func (z ZStr) Chars() *CharDecoder {
	it := z.Iter()
	return NewCharDecoder(&it)
}

// Equal reports content equality with o, address-independent.
func (z ZStr) Equal(o ZStr) bool { return z.Ref().Equal(o.Ref()) }

// EqualString reports whether the content equals s (s carries no NUL).
func (z ZStr) EqualString(s string) bool {
	return z.Ref().EqualBytes(common.StringToBytes(s))
}

// String decodes the content. Implements fmt.Stringer over the iteration
// contract, nothing more.
func (z ZStr) String() string {
	it := z.Iter()
	return DecodeString(&it)
}
