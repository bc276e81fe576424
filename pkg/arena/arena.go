// Package arena supplies the byte-region allocators behind owned
// zero-terminated handles. An owned handle remembers its arena and, on
// release, returns exactly the bytes it recovered by re-scanning for the
// terminator; the arena decides what reuse, if any, happens after that.
package arena

// Arena hands out and takes back contiguous byte regions. Put must receive
// a slice whose first byte is the start of a region previously returned by
// Alloc on the same arena, sized to the caller's recovered length.
// Implementations are not synchronized; sharing one across goroutines is a
// caller concern.
type Arena interface {
	Alloc(size int) []byte
	Put(buf []byte)
}

// Heap returns the default arena: plain Go-heap allocations. Put poisons
// the region so stale handles fail loudly, then leaves it to the collector.
func Heap() Arena { return heapArena{} }

type heapArena struct{}

func (heapArena) Alloc(size int) []byte { return make([]byte, size) }

func (heapArena) Put(buf []byte) {
	for i := range buf {
		buf[i] = 0xFE
	}
}

// Slab is a fixed-block freelist arena for FFI-heavy call sites that churn
// through many short strings. Regions up to the block size are recycled;
// larger requests fall through to the heap and are not recycled.
type Slab struct {
	block int
	free  [][]byte
	live  map[*byte][]byte
}

// NewSlab returns a slab arena recycling blocks of the given size.
func NewSlab(block int) *Slab {
	if block <= 0 {
		panic("arena: non-positive block size")
	}
	return &Slab{block: block, live: make(map[*byte][]byte)}
}

// Alloc pops a free block or grows. Requests larger than the block size are
// served straight from the heap.
func (s *Slab) Alloc(size int) []byte {
	if size > s.block {
		return make([]byte, size)
	}
	var blk []byte
	if n := len(s.free); n > 0 {
		blk = s.free[n-1]
		s.free = s.free[:n-1]
		for i := range blk {
			blk[i] = 0
		}
	} else {
		blk = make([]byte, s.block)
	}
	s.live[&blk[0]] = blk
	return blk[:size]
}

// Put pushes the block holding buf back onto the freelist. Oversized heap
// fallbacks are dropped. A buffer this arena never allocated, or one already
// returned, panics.
func (s *Slab) Put(buf []byte) {
	if len(buf) == 0 {
		panic("arena: Put of empty buffer")
	}
	if len(buf) > s.block {
		return
	}
	p := &buf[0]
	blk, ok := s.live[p]
	if !ok {
		panic("arena: Put of foreign or already-freed buffer")
	}
	delete(s.live, p)
	s.free = append(s.free, blk)
}

// Live reports how many blocks are checked out. Test and leak-audit hook.
func (s *Slab) Live() int { return len(s.live) }
