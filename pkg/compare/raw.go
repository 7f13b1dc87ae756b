package compare

import (
	"bytes"
	"cmp"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// Bytes orders slots lexicographically.
func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// U32LE orders slots by their leading little-endian uint32.
func U32LE(a, b []byte) int {
	return cmp.Compare(buf.U32LE(a), buf.U32LE(b))
}

// I32LE orders slots by their leading little-endian int32.
func I32LE(a, b []byte) int {
	return cmp.Compare(buf.I32LE(a), buf.I32LE(b))
}

// U64LE orders slots by their leading little-endian uint64.
func U64LE(a, b []byte) int {
	return cmp.Compare(buf.U64LE(a), buf.U64LE(b))
}

// I64LE orders slots by their leading little-endian int64.
func I64LE(a, b []byte) int {
	return cmp.Compare(buf.I64LE(a), buf.I64LE(b))
}
