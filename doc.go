// Package zstring makes zero-terminated FFI data easier to work with.
//
// Every handle in this package is a thin pointer: a single machine word
// holding the start address of a contiguous byte region that ends at the
// first zero byte. No length is stored anywhere; length is always recovered
// by scanning for the terminator, which keeps the handles bit-compatible
// with a C "pointer to null-terminated bytes" parameter or return value.
//
// Three ownership variants exist over raw bytes: ZBytesRef (borrowed,
// read-only), ZBytesMut (borrowed, exclusive writer) and ZBytes (owned,
// released back to its arena exactly once). ZStr and ZString are the same
// handles specialized for UTF-8 content, decoded lazily by CharDecoder.
package zstring
