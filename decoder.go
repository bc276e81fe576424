package zstring

import (
	"strings"
	"unicode/utf8"
)

// ByteSource is any single-pass producer of bytes. ByteIter satisfies it,
// and so does anything else that can hand out one byte at a time.
type ByteSource interface {
	Next() (byte, bool)
}

// UTF-8 lead and continuation bit patterns.
const (
	maskx = 0x3F // 0011 1111, continuation payload
	mask2 = 0x1F // 0001 1111, 2-byte lead payload
	mask3 = 0x0F // 0000 1111, 3-byte lead payload
	mask4 = 0x07 // 0000 0111, 4-byte lead payload

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// CharDecoder decodes a byte source as if it were UTF-8, one scalar value
// per call. Malformed input yields utf8.RuneError in place; decoding never
// fails, over any input.
//
// The decoder keeps exactly one byte of lookahead instead of buffering a
// full multi-byte sequence. When a multi-byte lead runs out of continuation
// bytes mid-sequence, it therefore emits one replacement character where a
// fully-buffered lossy decoder may emit two. That divergence is intentional:
// it lets the decoder run over any byte source, including ones that cannot
// be rewound, with no auxiliary buffer.
type CharDecoder struct {
	src     ByteSource
	peek    byte
	hasPeek bool
}

// NewCharDecoder wraps src. The decoder is single pass; construct a fresh
// one per decode.
func NewCharDecoder(src ByteSource) *CharDecoder {
	return &CharDecoder{src: src}
}

func (d *CharDecoder) nextByte() (byte, bool) {
	if d.hasPeek {
		d.hasPeek = false
		return d.peek, true
	}
	return d.src.Next()
}

func (d *CharDecoder) peekByte() (byte, bool) {
	if !d.hasPeek {
		b, ok := d.src.Next()
		if !ok {
			return 0, false
		}
		d.peek, d.hasPeek = b, true
	}
	return d.peek, true
}

// nextContinuation returns the next byte's payload bits, pre-masked, only
// if that byte is a continuation byte. A non-continuation byte is left
// unconsumed for the following Next call.
func (d *CharDecoder) nextContinuation() (uint32, bool) {
	b, ok := d.peekByte()
	if !ok || b>>6 != 0b10 {
		return 0, false
	}
	d.hasPeek = false
	return uint32(b & maskx), true
}

// scalar returns u as a rune if it is a valid Unicode scalar value,
// otherwise the replacement character.
func scalar(u uint32) rune {
	if u > utf8.MaxRune || (u >= surrogateMin && u <= surrogateMax) {
		return utf8.RuneError
	}
	return rune(u)
}

// Next produces the next scalar value, or reports exhaustion once the
// source is drained.
func (d *CharDecoder) Next() (rune, bool) {
	b, ok := d.nextByte()
	if !ok {
		return 0, false
	}
	x := uint32(b)
	switch {
	case x < utf8.RuneSelf:
		return rune(x), true
	case x>>5 == 0b110:
		y, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		return scalar((x&mask2)<<6 | y), true
	case x>>4 == 0b1110:
		y, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		z, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		return scalar((x&mask3)<<12 | y<<6 | z), true
	case x>>3 == 0b11110:
		y, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		z, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		w, ok := d.nextContinuation()
		if !ok {
			return utf8.RuneError, true
		}
		return scalar((x&mask4)<<18 | y<<12 | z<<6 | w), true
	default:
		// stray continuation byte, or 0xFE/0xFF
		return utf8.RuneError, true
	}
}

// DecodeString drains src through a fresh decoder into a string.
func DecodeString(src ByteSource) string {
	var sb strings.Builder
	d := NewCharDecoder(src)
	for {
		r, ok := d.Next()
		if !ok {
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

// SliceSource adapts a byte slice to ByteSource, for decoding data that
// does not live in a zero-terminated region. Zero bytes are yielded like
// any other; only slice exhaustion ends the sequence.
type SliceSource struct {
	b []byte
	i int
}

// NewSliceSource returns a source over b.
func NewSliceSource(b []byte) *SliceSource {
	return &SliceSource{b: b}
}

// Next yields the next byte or reports exhaustion.
func (s *SliceSource) Next() (byte, bool) {
	if s.i >= len(s.b) {
		return 0, false
	}
	b := s.b[s.i]
	s.i++
	return b, true
}
