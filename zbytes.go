package zstring

import (
	"github.com/rawbytedev/zstring/internal/common"
	"github.com/rawbytedev/zstring/pkg/arena"
)

// ZBytes owns a pointer to zero-terminated bytes.
//
// The bytes have no enforced encoding. Because the allocation size is not
// stored, the amount of data held cannot change, and no content byte may be
// set to zero. The handle is the region's single releaser: Free re-scans
// for the terminator to recover the allocation length, then returns exactly
// that many bytes to the arena the region came from, exactly once.
type ZBytes struct {
	p     *byte
	a     arena.Arena
	freed bool
}

// NewZBytes copies content into a fresh region from a, appends the
// terminator, and returns the owning handle. A zero byte anywhere in
// content fails with ErrInteriorNull. A nil arena means the heap.
func NewZBytes(content []byte, a arena.Arena) (*ZBytes, error) {
	for _, c := range content {
		if c == 0 {
			return nil, ErrInteriorNull
		}
	}
	if a == nil {
		a = arena.Heap()
	}
	buf := a.Alloc(len(content) + 1)
	copy(buf, content)
	buf[len(content)] = 0
	return &ZBytes{p: &buf[0], a: a}, nil
}

// OwnBytes takes ownership of buf, which must already carry its terminator
// and must have been allocated from a. Validation is the byte-path rule:
// last byte zero, nothing zero before it. A nil arena means the heap.
func OwnBytes(buf []byte, a arena.Arena) (*ZBytes, error) {
	if err := checkTerminated(buf); err != nil {
		return nil, err
	}
	if a == nil {
		a = arena.Heap()
	}
	return &ZBytes{p: &buf[0], a: a}, nil
}

// OwnPtrUnchecked takes ownership of the region at p without validation.
// The caller certifies the terminator invariants and that the region was
// allocated from a. A nil arena means the heap.
func OwnPtrUnchecked(p *byte, a arena.Arena) *ZBytes {
	if a == nil {
		a = arena.Heap()
	}
	return &ZBytes{p: p, a: a}
}

// Free releases the region back to its arena. The length was never stored,
// so it is recovered here by scanning to the terminator; content plus
// terminator is returned in one piece. Calling Free twice panics.
func (z *ZBytes) Free() {
	if z.freed {
		panic("zstring: Free of freed ZBytes")
	}
	z.freed = true
	n := common.TermLen(z.p) + 1
	z.a.Put(common.Slice(z.p, n))
}

func (z *ZBytes) check() {
	if z.freed {
		panic("zstring: use of freed ZBytes")
	}
}

// Ref borrows the read-only view of the data.
func (z *ZBytes) Ref() ZBytesRef {
	z.check()
	return ZBytesRef{p: z.p}
}

// Mut borrows the exclusive writable view of the data.
func (z *ZBytes) Mut() ZBytesMut {
	z.check()
	return ZBytesMut{p: z.p}
}

// Ptr returns the start address. This is the FFI boundary value.
func (z *ZBytes) Ptr() *byte {
	z.check()
	return z.p
}

// Len scans for the terminator and returns the content length. Linear time.
func (z *ZBytes) Len() int {
	z.check()
	return common.TermLen(z.p)
}

// Bytes aliases the content, excluding the terminator.
func (z *ZBytes) Bytes() []byte {
	z.check()
	return common.Slice(z.p, common.TermLen(z.p))
}

// Iter returns a fresh byte iterator over the content.
func (z *ZBytes) Iter() ByteIter {
	z.check()
	return ByteIter{p: z.p}
}

// Equal reports content equality with o, address-independent.
func (z *ZBytes) Equal(o *ZBytes) bool {
	z.check()
	o.check()
	return z.Ref().Equal(o.Ref())
}
