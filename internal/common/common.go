package common

import "unsafe"

// TermLen walks forward from p and returns the number of bytes before the
// terminator. Linear time; the caller must guarantee a terminator exists.
func TermLen(p *byte) int {
	n := 0
	for *p != 0 {
		n++
		p = Add(p, 1)
	}
	return n
}

// Add offsets a byte pointer without bounds checks.
func Add(p *byte, n int) *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(p), n))
}

// Slice aliases n bytes starting at p. No copy is made.
func Slice(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}

// BytesToString aliases b as a string without copying. The caller must not
// mutate b while the string is live.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes aliases s as a byte slice without copying. The returned
// slice must never be written to.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
