package zstring

import (
	"strings"

	"github.com/rawbytedev/zstring/internal/common"
	"github.com/rawbytedev/zstring/pkg/arena"
)

// ZString owns a pointer to zero-terminated, UTF-8 encoded bytes.
//
// Same ownership contract as ZBytes: the handle is the single releaser and
// Free recovers the allocation length by re-scanning for the terminator.
type ZString struct {
	p     *byte
	a     arena.Arena
	freed bool
}

// NewZString trims any number of trailing NULs from s, then copies what is
// left into a fresh terminated region from a. Fails with ErrInteriorNulls
// if the trimmed content still contains a NUL. A nil arena means the heap.
func NewZString(s string, a arena.Arena) (*ZString, error) {
	trimmed := strings.TrimRight(s, "\x00")
	if strings.IndexByte(trimmed, 0) >= 0 {
		return nil, ErrInteriorNulls
	}
	if a == nil {
		a = arena.Heap()
	}
	buf := a.Alloc(len(trimmed) + 1)
	copy(buf, trimmed)
	buf[len(trimmed)] = 0
	return &ZString{p: &buf[0], a: a}, nil
}

// ZStringFromRunes builds an owned string from scalar values. U+0000
// anywhere fails with ErrInteriorNulls. A nil arena means the heap.
func ZStringFromRunes(runes []rune, a arena.Arena) (*ZString, error) {
	var sb strings.Builder
	for _, r := range runes {
		if r == 0 {
			return nil, ErrInteriorNulls
		}
		sb.WriteRune(r)
	}
	return NewZString(sb.String(), a)
}

// OwnZStrPtrUnchecked takes ownership of the region at p without
// validation. The caller certifies the terminator invariants, UTF-8
// validity, and that the region was allocated from a.
func OwnZStrPtrUnchecked(p *byte, a arena.Arena) *ZString {
	if a == nil {
		a = arena.Heap()
	}
	return &ZString{p: p, a: a}
}

// Free releases the region back to its arena, recovering the allocation
// length by terminator scan. Calling Free twice panics.
func (z *ZString) Free() {
	if z.freed {
		panic("zstring: Free of freed ZString")
	}
	z.freed = true
	n := common.TermLen(z.p) + 1
	z.a.Put(common.Slice(z.p, n))
}

func (z *ZString) check() {
	if z.freed {
		panic("zstring: use of freed ZString")
	}
}

// Str borrows the thin read-only view of the data.
func (z *ZString) Str() ZStr {
	z.check()
	return ZStr{p: z.p}
}

// Ptr returns the start address. This is the FFI boundary value.
func (z *ZString) Ptr() *byte {
	z.check()
	return z.p
}

// Len scans for the terminator and returns the content length in bytes.
func (z *ZString) Len() int {
	z.check()
	return common.TermLen(z.p)
}

// Iter returns a fresh byte iterator over the content.
func (z *ZString) Iter() ByteIter {
	z.check()
	return ByteIter{p: z.p}
}

// Chars returns a fresh scalar-value iterator over the content.
func (z *ZString) Chars() *CharDecoder {
	return z.Str().Chars()
}

// Clone allocates an equal copy from the same arena. The content is already
// certified, so the copy takes the unchecked path.
func (z *ZString) Clone() *ZString {
	z.check()
	n := common.TermLen(z.p) + 1
	buf := z.a.Alloc(n)
	copy(buf, common.Slice(z.p, n))
	return OwnZStrPtrUnchecked(&buf[0], z.a)
}

// Equal reports content equality with o, address-independent.
func (z *ZString) Equal(o *ZString) bool {
	z.check()
	o.check()
	return z.Str().Equal(o.Str())
}

// String decodes the content via the iteration contract.
func (z *ZString) String() string {
	z.check()
	return z.Str().String()
}

// ZStrsOf borrows every element of zs at once. The returned handles are
// valid only while none of the owners is freed.
func ZStrsOf(zs []*ZString) []ZStr {
	out := make([]ZStr, len(zs))
	for i, z := range zs {
		out[i] = z.Str()
	}
	return out
}
